package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// String prints the grid one row per line followed by a status line.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteString(b.cells[row][col].Symbol())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(b.status())
	sb.WriteByte('\n')
	return sb.String()
}

func (b Board) status() string {
	if b.IsEnd() {
		return fmt.Sprintf("Over! Result: %d", b.Result())
	}
	return fmt.Sprintf("%s's turn", b.Active().Symbol())
}

// Render writes the board to w with coordinates and coloured pieces. The
// colours follow profile; termenv.Ascii yields plain text.
func (b Board) Render(w io.Writer, profile termenv.Profile) error {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	legal := map[[2]int]bool{}
	for _, a := range b.LegalActions() {
		if a.Type == PutAction {
			legal[[2]int{a.Row, a.Col}] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < Size; col++ {
		fmt.Fprintf(&sb, "%d", col)
	}
	sb.WriteByte('\n')
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < Size; col++ {
			p := b.cells[row][col]
			style := out.String(p.Symbol())
			switch {
			case p == First:
				style = style.Foreground(profile.Color("#e0e0e0")).Bold()
			case p == Second:
				style = style.Foreground(profile.Color("#d03030")).Bold()
			case legal[[2]int{row, col}]:
				style = out.String("*").Foreground(profile.Color("#40a040")).Faint()
			}
			sb.WriteString(style.String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(b.status())
	sb.WriteByte('\n')

	_, err := io.WriteString(out, sb.String())
	return err
}
