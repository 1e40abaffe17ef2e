package game

// Apply plays a on the board. On success the board is updated and the other
// side is to move. On failure an *ActionError is returned and the board is
// left untouched.
func (b *Board) Apply(a Action) error {
	if b.IsEnd() {
		return &ActionError{Action: a, Err: ErrGameOver}
	}

	if a.Type == PassAction {
		if b.CanPut() {
			return &ActionError{Action: a, Err: ErrIllegalPass, Legal: b.LegalActions()}
		}
		b.first = !b.first
		return nil
	}

	if !InBounds(a.Row, a.Col) {
		return &ActionError{Action: a, Err: ErrOutOfBounds}
	}
	if b.cells[a.Row][a.Col] != Empty {
		return &ActionError{Action: a, Err: ErrCellOccupied}
	}
	r := b.Reversal(a.Row, a.Col)
	if !r.Captures() {
		return &ActionError{Action: a, Err: ErrNoCapture}
	}

	own := b.Active()
	b.cells[a.Row][a.Col] = own
	for d, n := range r {
		dy, dx := directions[d][0], directions[d][1]
		for i := 1; i <= n; i++ {
			b.cells[a.Row+dy*i][a.Col+dx*i] = own
		}
	}
	b.first = !b.first
	return nil
}
