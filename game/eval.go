package game

// IsEnd reports whether neither side has a legal placement. The opponent is
// queried on a copy, so the receiver's side to move is never disturbed.
func (b Board) IsEnd() bool {
	if b.CanPut() {
		return false
	}
	return !b.Toggled().CanPut()
}

// Result scores the board from First's perspective: positive when First
// leads, negative when Second leads. A side with no pieces left loses by the
// full Cells margin regardless of how many cells are still empty.
func (b Board) Result() int {
	f := b.Count(First)
	s := b.Count(Second)
	switch {
	case f == 0:
		return -Cells
	case s == 0:
		return Cells
	default:
		return f - s
	}
}

// Winner returns the leading side according to Result, Empty on a draw.
func (b Board) Winner() Piece {
	switch r := b.Result(); {
	case r > 0:
		return First
	case r < 0:
		return Second
	default:
		return Empty
	}
}
