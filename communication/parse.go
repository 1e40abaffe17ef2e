package communication

import (
	"fmt"
	"strconv"
	"strings"

	"reversi/game"
)

// ParseError reports a line that does not follow the protocol.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed line %q: %s", e.Line, e.Reason)
}

// ParseMessage decodes one referee line.
func ParseMessage(line string) (Message, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Message{}, &ParseError{Line: line, Reason: "empty line"}
	}

	switch fields[0] {
	case "init":
		if err := arity(line, fields, 2); err != nil {
			return Message{}, err
		}
		side, err := strconv.Atoi(fields[1])
		if err != nil || (side != 0 && side != 1) {
			return Message{}, &ParseError{Line: line, Reason: "side must be 0 or 1"}
		}
		return Init(side), nil
	case "played":
		if len(fields) < 2 {
			return Message{}, &ParseError{Line: line, Reason: "missing action"}
		}
		a, err := parseAction(line, fields[1:])
		if err != nil {
			return Message{}, err
		}
		return Played(a), nil
	case "res":
		if err := arity(line, fields, 2); err != nil {
			return Message{}, err
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return Message{}, &ParseError{Line: line, Reason: "result is not an integer"}
		}
		return Res(n), nil
	case "wait":
		if err := arity(line, fields, 1); err != nil {
			return Message{}, err
		}
		return Wait(), nil
	default:
		return Message{}, &ParseError{Line: line, Reason: fmt.Sprintf("unknown message %q", fields[0])}
	}
}

// ParseAction decodes an agent reply: "put <y> <x>" or "pass".
func ParseAction(line string) (game.Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return game.Action{}, &ParseError{Line: line, Reason: "empty line"}
	}
	return parseAction(line, fields)
}

func parseAction(line string, fields []string) (game.Action, error) {
	switch fields[0] {
	case "put":
		if err := arity(line, fields, 3); err != nil {
			return game.Action{}, err
		}
		row, err := coordinate(fields[1])
		if err != nil {
			return game.Action{}, &ParseError{Line: line, Reason: "row " + err.Error()}
		}
		col, err := coordinate(fields[2])
		if err != nil {
			return game.Action{}, &ParseError{Line: line, Reason: "column " + err.Error()}
		}
		return game.Put(row, col), nil
	case "pass":
		if err := arity(line, fields, 1); err != nil {
			return game.Action{}, err
		}
		return game.Pass(), nil
	default:
		return game.Action{}, &ParseError{Line: line, Reason: fmt.Sprintf("unknown action %q", fields[0])}
	}
}

func arity(line string, fields []string, want int) error {
	if len(fields) != want {
		return &ParseError{Line: line, Reason: fmt.Sprintf("expected %d tokens, got %d", want, len(fields))}
	}
	return nil
}

func coordinate(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if n < 0 || n >= game.Size {
		return 0, fmt.Errorf("%d is off the board", n)
	}
	return n, nil
}
