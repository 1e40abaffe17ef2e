package game

// Size is the width and height of the board.
const Size = 8

// Cells is the number of squares on the board, also the wipeout margin.
const Cells = Size * Size

type StateHash uint64

// Reversal holds, per direction, the number of opponent pieces a placement
// would flip. Indexed by the position of the direction in directions.
type Reversal [8]int

// Total returns the number of pieces flipped over all directions.
func (r Reversal) Total() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

// Captures reports whether any direction flips at least one piece.
func (r Reversal) Captures() bool {
	for _, n := range r {
		if n > 0 {
			return true
		}
	}
	return false
}

// Compass order starting at East, clockwise.
var directions = [8][2]int{
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
	{-1, 0},
	{-1, 1},
}

func InBounds(row, col int) bool {
	return 0 <= row && row < Size && 0 <= col && col < Size
}
