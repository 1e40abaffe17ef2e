package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reversi/communication"
	"reversi/game"
	"reversi/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoReply      = errors.New("agent did not answer wait")
	ErrUnexpected   = errors.New("agent replied to a message that takes no reply")
	ErrTooManyTurns = errors.New("match exceeded the turn limit")
)

// Agent is one side of a match. player.Player implements it directly;
// LineAgent adapts anything that speaks the text protocol.
type Agent interface {
	Handle(msg communication.Message) (*game.Action, error)
}

// AgentError attributes a failure to the agent playing Side.
type AgentError struct {
	Side game.Piece
	Err  error
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("%s agent: %v", e.Side, e.Err)
}

func (e *AgentError) Unwrap() error {
	return e.Err
}

// Update describes one accepted action.
type Update struct {
	Turn   int
	Side   game.Piece
	Action game.Action
	Legal  int // number of legal actions the side had
	Board  game.Board
	Hash   game.StateHash
}

// Match summarises a finished game.
type Match struct {
	ID        uuid.UUID
	Result    int
	Winner    game.Piece
	Moves     int
	Passes    int
	Log       []game.Action
	Board     game.Board
	StartTime time.Time
	EndTime   time.Time
}

type Option func(gm *GameMaster)

// WithMaxTurns overrides meta.MAX_TURNS.
func WithMaxTurns(turns int) Option {
	return func(gm *GameMaster) {
		if turns > 0 {
			gm.maxTurns = turns
		}
	}
}

// WithObserver is called after every accepted action.
func WithObserver(observe func(Update)) Option {
	return func(gm *GameMaster) {
		if observe != nil {
			gm.observers = append(gm.observers, observe)
		}
	}
}

// GameMaster referees a single match between two agents. It keeps its own
// board, asks the side to move for an action, checks it and mirrors it to
// the opponent as a played message.
type GameMaster struct {
	agents    [2]Agent
	board     game.Board
	maxTurns  int
	observers []func(Update)
}

// NewGameMaster pairs first (init 0) against second (init 1).
func NewGameMaster(first, second Agent, options ...Option) *GameMaster {
	gm := &GameMaster{
		agents:   [2]Agent{first, second},
		board:    game.NewBoard(),
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(gm)
	}
	return gm
}

// Run plays the match to the end and reports the result to both agents.
func (gm *GameMaster) Run(ctx context.Context) (Match, error) {
	match := Match{ID: uuid.New(), StartTime: time.Now()}
	logger := log.With().Str("match", match.ID.String()).Logger()
	gm.board = game.NewBoard()

	for i := range gm.agents {
		if err := gm.notify(i, communication.Init(i)); err != nil {
			return match, err
		}
	}
	logger.Debug().Msg("match started")

	for turn := 1; !gm.board.IsEnd(); turn++ {
		if err := ctx.Err(); err != nil {
			return match, err
		}
		if turn > gm.maxTurns {
			return match, ErrTooManyTurns
		}

		mover := seat(gm.board)
		legal := len(gm.board.LegalActions())
		reply, err := gm.agents[mover].Handle(communication.Wait())
		if err != nil {
			return match, &AgentError{Side: gm.board.Active(), Err: err}
		}
		if reply == nil {
			return match, &AgentError{Side: gm.board.Active(), Err: ErrNoReply}
		}

		side := gm.board.Active()
		if err := gm.board.Apply(*reply); err != nil {
			return match, &AgentError{Side: side, Err: err}
		}
		if err := gm.notify(1-mover, communication.Played(*reply)); err != nil {
			return match, err
		}

		match.Log = append(match.Log, *reply)
		if reply.IsPass() {
			match.Passes++
		} else {
			match.Moves++
		}
		logger.Debug().Int("turn", turn).Str("side", side.String()).Str("action", reply.String()).Msg("accepted")

		u := Update{
			Turn:   turn,
			Side:   side,
			Action: *reply,
			Legal:  legal,
			Board:  gm.board,
			Hash:   gm.board.Hash(),
		}
		for _, observe := range gm.observers {
			observe(u)
		}
	}

	match.Result = gm.board.Result()
	match.Winner = gm.board.Winner()
	match.Board = gm.board
	match.EndTime = time.Now()
	for i := range gm.agents {
		if err := gm.notify(i, communication.Res(match.Result)); err != nil {
			return match, err
		}
	}

	logger.Info().Int("result", match.Result).Int("moves", match.Moves).Int("passes", match.Passes).Msg("match over")
	return match, nil
}

// notify sends a message that takes no reply.
func (gm *GameMaster) notify(i int, msg communication.Message) error {
	side := game.First
	if i == 1 {
		side = game.Second
	}
	reply, err := gm.agents[i].Handle(msg)
	if err != nil {
		return &AgentError{Side: side, Err: err}
	}
	if reply != nil {
		return &AgentError{Side: side, Err: fmt.Errorf("%w: %s", ErrUnexpected, msg)}
	}
	return nil
}

func seat(b game.Board) int {
	if b.FirstToMove() {
		return 0
	}
	return 1
}
