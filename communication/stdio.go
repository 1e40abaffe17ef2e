package communication

import (
	"bufio"
	"fmt"
	"io"

	"reversi/game"
)

// Stdio speaks the line protocol over a reader and a writer, normally the
// process's standard input and output.
type Stdio struct {
	scanner *bufio.Scanner
	w       *bufio.Writer
}

func NewStdio(r io.Reader, w io.Writer) *Stdio {
	return &Stdio{
		scanner: bufio.NewScanner(r),
		w:       bufio.NewWriter(w),
	}
}

// Receive reads and decodes the next line. Malformed lines are reported as
// *ParseError; the next call continues with the following line.
func (s *Stdio) Receive() (Message, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return Message{}, fmt.Errorf("failed to read message: %w", err)
		}
		return Message{}, io.EOF
	}
	return ParseMessage(s.scanner.Text())
}

// Send writes the action as a single line and flushes it.
func (s *Stdio) Send(action game.Action) error {
	if _, err := fmt.Fprintln(s.w, action.String()); err != nil {
		return fmt.Errorf("failed to write action: %w", err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush action: %w", err)
	}
	return nil
}
