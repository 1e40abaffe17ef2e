package game

// Piece is the content of a single cell.
type Piece int

const (
	Empty Piece = iota
	First
	Second
)

// Opponent returns the other side's colour. Empty has no opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case First:
		return Second
	case Second:
		return First
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "empty"
	}
}

// Symbol is the single character used when printing a board.
func (p Piece) Symbol() string {
	switch p {
	case First:
		return "O"
	case Second:
		return "X"
	default:
		return "."
	}
}
