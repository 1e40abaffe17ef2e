package experiments

import (
	"context"
	"testing"

	"reversi/game"

	"github.com/stretchr/testify/require"
)

func TestRunSelfPlay(t *testing.T) {
	res, err := RunSelfPlay(context.Background(), Config{Games: 12, Workers: 3, Seed: 42})
	require.NoError(t, err)

	require.Len(t, res.Games, 12)
	for i, g := range res.Games {
		require.Equal(t, i+1, g.ID, "games should be ordered by ID")
		require.GreaterOrEqual(t, g.Result, -game.Cells)
		require.LessOrEqual(t, g.Result, game.Cells)
		require.LessOrEqual(t, g.Moves, game.Cells-4)
	}

	s := res.Summary
	require.Equal(t, 12, s.Games)
	require.Equal(t, 12, s.FirstWins+s.SecondWins+s.Draws)

	total := 0
	for _, g := range res.Games {
		total += g.Moves + g.Passes
	}
	require.Len(t, res.Moves, total, "one move record per accepted action")
	require.Equal(t, 1, res.Moves[0].Game)
	require.Equal(t, 1, res.Moves[0].Turn)
	require.Equal(t, "first", res.Moves[0].Side)
	require.Equal(t, 4, res.Moves[0].Legal, "opening offers four moves")
}

func TestRunSelfPlayIsReproducible(t *testing.T) {
	a, err := RunSelfPlay(context.Background(), Config{Games: 4, Workers: 4, Seed: 7})
	require.NoError(t, err)
	b, err := RunSelfPlay(context.Background(), Config{Games: 4, Workers: 1, Seed: 7})
	require.NoError(t, err)

	require.Equal(t, a.Moves, b.Moves, "the same seed should replay the same games")
	for i := range a.Games {
		require.Equal(t, a.Games[i].Result, b.Games[i].Result)
		require.NotEqual(t, a.Games[i].Match, b.Games[i].Match, "every match gets a fresh ID")
	}
}

func TestRunSelfPlayErrors(t *testing.T) {
	t.Run("no games", func(t *testing.T) {
		_, err := RunSelfPlay(context.Background(), Config{})
		require.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := RunSelfPlay(ctx, Config{Games: 2})
		require.ErrorIs(t, err, context.Canceled)
	})
}
