package game

import (
	"errors"
	"fmt"
)

// Errors returned by Apply. Use errors.Is to tell them apart.
var (
	ErrGameOver     = errors.New("game is over")
	ErrOutOfBounds  = errors.New("out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrNoCapture    = errors.New("no reversing pieces")
	ErrIllegalPass  = errors.New("cannot pass while a placement is legal")
)

// ActionError reports an action that was rejected and why.
type ActionError struct {
	Action Action
	Err    error
	// Legal holds the placements that were available when a pass was refused.
	Legal []Action
}

func (e *ActionError) Error() string {
	if errors.Is(e.Err, ErrIllegalPass) {
		return fmt.Sprintf("%s: %v: legal actions %v", e.Action, e.Err, e.Legal)
	}
	if e.Action.Type == PutAction {
		return fmt.Sprintf("put (%d, %d): %v", e.Action.Row, e.Action.Col, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Action, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
