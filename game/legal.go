package game

import "golang.org/x/exp/slices"

// IsLegal reports whether a is one of the actions LegalActions would return.
func (b Board) IsLegal(a Action) bool {
	if b.IsEnd() {
		return false
	}
	return slices.Contains(b.LegalActions(), a)
}
