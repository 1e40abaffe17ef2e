package communication

import (
	"fmt"

	"reversi/game"
)

// Kind identifies a referee message.
type Kind int

const (
	InitMessage Kind = iota
	PlayedMessage
	ResMessage
	WaitMessage
)

// Message is one line sent by the referee to an agent.
type Message struct {
	Kind Kind
	// Side is 0 when the agent plays First and 1 when it plays Second (init only).
	Side int
	// Action is the opponent's move (played only).
	Action game.Action
	// Result is the final margin from First's perspective (res only).
	Result int
}

func Init(side int) Message {
	return Message{Kind: InitMessage, Side: side}
}

func Played(a game.Action) Message {
	return Message{Kind: PlayedMessage, Action: a}
}

func Res(result int) Message {
	return Message{Kind: ResMessage, Result: result}
}

func Wait() Message {
	return Message{Kind: WaitMessage}
}

// Piece returns the colour assigned by an init message.
func (m Message) Piece() game.Piece {
	if m.Side == 0 {
		return game.First
	}
	return game.Second
}

// String encodes the message as a protocol line without the trailing newline.
func (m Message) String() string {
	switch m.Kind {
	case InitMessage:
		return fmt.Sprintf("init %d", m.Side)
	case PlayedMessage:
		return "played " + m.Action.String()
	case ResMessage:
		return fmt.Sprintf("res %d", m.Result)
	case WaitMessage:
		return "wait"
	default:
		return fmt.Sprintf("unknown(%d)", int(m.Kind))
	}
}

// Communicator is the agent's side of the referee connection.
type Communicator interface {
	// Receive blocks for the next message. It returns io.EOF once the referee
	// has closed the connection.
	Receive() (Message, error)
	Send(action game.Action) error
}
