package game

import "fmt"

// ActionType distinguishes a placement from a pass.
type ActionType int

const (
	PutAction ActionType = iota
	PassAction
)

// Action is a move by the side to move. Row and Col are only meaningful for
// PutAction.
type Action struct {
	Type ActionType
	Row  int
	Col  int
}

func Put(row, col int) Action {
	return Action{Type: PutAction, Row: row, Col: col}
}

func Pass() Action {
	return Action{Type: PassAction}
}

func (a Action) IsPass() bool {
	return a.Type == PassAction
}

// String encodes the action the way it travels on the wire: "put <y> <x>" or "pass".
func (a Action) String() string {
	if a.Type == PassAction {
		return "pass"
	}
	return fmt.Sprintf("put %d %d", a.Row, a.Col)
}
