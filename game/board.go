package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Board is an 8x8 Reversi position together with the side to move. It is a
// plain value: assigning a Board copies it.
type Board struct {
	cells [Size][Size]Piece
	first bool // First is to move
}

// NewBoard returns the canonical starting position with First to move.
func NewBoard() Board {
	var b Board
	b.cells[4][3] = First
	b.cells[3][4] = First
	b.cells[3][3] = Second
	b.cells[4][4] = Second
	b.first = true
	return b
}

// At returns the piece on (row, col). It panics when the cell is off the board.
func (b Board) At(row, col int) Piece {
	return b.cells[row][col]
}

func (b Board) FirstToMove() bool {
	return b.first
}

// Active returns the colour of the side to move.
func (b Board) Active() Piece {
	if b.first {
		return First
	}
	return Second
}

// Toggled returns a copy of the board with the other side to move.
func (b Board) Toggled() Board {
	b.first = !b.first
	return b
}

// Count returns the number of cells holding p.
func (b Board) Count(p Piece) int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col] == p {
				n++
			}
		}
	}
	return n
}

// Pieces returns the number of non-empty cells.
func (b Board) Pieces() int {
	return Cells - b.Count(Empty)
}

func (b Board) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash side to move
	binary.Write(hasher, binary.LittleEndian, b.first)

	// Hash cells row by row
	for row := range b.cells {
		for _, p := range b.cells[row] {
			binary.Write(hasher, binary.LittleEndian, int8(p))
		}
	}

	return StateHash(hasher.Sum64())
}
