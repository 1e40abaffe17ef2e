package gamemaster

import (
	"bufio"
	"fmt"
	"io"

	"reversi/communication"
	"reversi/game"
)

// LineAgent talks to an agent process through the text protocol: every
// message is written as a line and wait is answered by reading one line back.
type LineAgent struct {
	w       io.Writer
	scanner *bufio.Scanner
}

func NewLineAgent(r io.Reader, w io.Writer) *LineAgent {
	return &LineAgent{
		w:       w,
		scanner: bufio.NewScanner(r),
	}
}

func (la *LineAgent) Handle(msg communication.Message) (*game.Action, error) {
	if _, err := fmt.Fprintln(la.w, msg.String()); err != nil {
		return nil, fmt.Errorf("failed to send %q: %w", msg, err)
	}
	if msg.Kind != communication.WaitMessage {
		return nil, nil
	}

	if !la.scanner.Scan() {
		if err := la.scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read reply: %w", err)
		}
		return nil, io.ErrUnexpectedEOF
	}
	action, err := communication.ParseAction(la.scanner.Text())
	if err != nil {
		return nil, err
	}
	return &action, nil
}
