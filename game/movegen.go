package game

// Reversal computes, for the side to move placing at (row, col), how many
// opponent pieces each direction would flip. An occupied cell captures nothing.
func (b Board) Reversal(row, col int) Reversal {
	var res Reversal
	if b.cells[row][col] != Empty {
		return res
	}
	own := b.Active()
	for d, dir := range directions {
		dy, dx := dir[0], dir[1]
		ny, nx := row+dy, col+dx
		if !InBounds(ny, nx) {
			continue
		}
		// A capture has to start on an opponent piece
		if s := b.cells[ny][nx]; s == Empty || s == own {
			continue
		}
		for i := 2; i < Size; i++ {
			ty, tx := row+dy*i, col+dx*i
			if !InBounds(ty, tx) {
				break
			}
			t := b.cells[ty][tx]
			if t == Empty {
				break
			}
			if t == own {
				res[d] = i - 1
				break
			}
		}
	}
	return res
}

// CanPut reports whether the side to move has at least one legal placement.
func (b Board) CanPut() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.Reversal(row, col).Captures() {
				return true
			}
		}
	}
	return false
}

// LegalActions lists the placements available to the side to move in
// row-major order, or exactly [Pass] when there are none. It never mutates b.
func (b Board) LegalActions() []Action {
	var actions []Action
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.Reversal(row, col).Captures() {
				actions = append(actions, Put(row, col))
			}
		}
	}
	if len(actions) == 0 {
		return []Action{Pass()}
	}
	return actions
}
