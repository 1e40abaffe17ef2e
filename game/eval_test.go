package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsEnd(t *testing.T) {
	t.Run("initial board is in play", func(t *testing.T) {
		require.False(t, NewBoard().IsEnd())
	})

	t.Run("one side passing is not the end", func(t *testing.T) {
		b := boardFrom(t, true,
			"XXXXXXXX",
			"XXXXXXXX",
			"XXXXXXXX",
			"XXXXXXXX",
			"XXXXXXXX",
			"XXXXXXXX",
			"XXXXXXO.",
			"XXXXXXXX",
		)
		require.Equal(t, []Action{Pass()}, b.LegalActions())
		require.False(t, b.IsEnd())
		require.True(t, b.FirstToMove(), "IsEnd should not change the side to move")
	})

	t.Run("full board is the end", func(t *testing.T) {
		b := boardFrom(t, false,
			"OOOOOOOO",
			"OOOOOOOO",
			"OOOOOOOO",
			"OOOOOOOO",
			"XXXXXXXX",
			"XXXXXXXX",
			"XXXXXXXX",
			"XXXXXXXX",
		)
		require.True(t, b.IsEnd())
		require.True(t, b.Toggled().IsEnd())
		require.Zero(t, b.Result())
		require.Equal(t, Empty, b.Winner())
	})

	t.Run("random games end on boards where both sides pass", func(t *testing.T) {
		for seed := uint64(100); seed < 120; seed++ {
			b := randomGame(t, seed, nil)
			require.Equal(t, []Action{Pass()}, b.LegalActions())
			require.Equal(t, []Action{Pass()}, b.Toggled().LegalActions())
			r := b.Result()
			require.GreaterOrEqual(t, r, -Cells)
			require.LessOrEqual(t, r, Cells)
		}
	})
}

func TestResult(t *testing.T) {
	t.Run("difference of piece counts", func(t *testing.T) {
		b := NewBoard()
		require.Zero(t, b.Result())
		require.NoError(t, b.Apply(Put(2, 3)))
		require.Equal(t, 3, b.Result())
		require.Equal(t, First, b.Winner())
	})

	t.Run("wipeout of Second counts the whole board", func(t *testing.T) {
		b := boardFrom(t, true,
			"OX......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		require.NoError(t, b.Apply(Put(0, 2)))
		require.True(t, b.IsEnd())
		require.Equal(t, 61, b.Count(Empty))
		require.Equal(t, Cells, b.Result(), "Clamp applies even with empty cells left")
		require.Equal(t, First, b.Winner())
	})

	t.Run("wipeout of First counts the whole board", func(t *testing.T) {
		b := boardFrom(t, true,
			"........",
			"........",
			"........",
			"...X....",
			"........",
			"........",
			"........",
			"........",
		)
		require.True(t, b.IsEnd())
		require.Equal(t, -Cells, b.Result())
		require.Equal(t, Second, b.Winner())
	})

	t.Run("second ahead is negative", func(t *testing.T) {
		b := boardFrom(t, true,
			"OXXX....",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		require.Equal(t, -2, b.Result())
		require.Equal(t, Second, b.Winner())
	})
}
