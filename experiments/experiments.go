package experiments

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"reversi/experiments/metrics"
	"reversi/gamemaster"
	"reversi/meta"
	"reversi/player"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Games   int
	Workers int
	Seed    uint64 // Game i seeds its players with Seed+2i and Seed+2i+1
}

type Results struct {
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Summary metrics.Summary
}

// RunSelfPlay plays random agents against each other through the game master.
// Games are spread over Workers goroutines; records come back ordered by ID.
func RunSelfPlay(ctx context.Context, cfg Config) (Results, error) {
	if cfg.Games <= 0 {
		return Results{}, fmt.Errorf("number of games must be positive, got %d", cfg.Games)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = meta.SELFPLAY_WORKERS
	}

	task := make(chan int, cfg.Games)
	for i := 1; i <= cfg.Games; i++ {
		task <- i
	}
	close(task)

	log.Info().Int("games", cfg.Games).Int("workers", workers).Msg("starting self-play")

	collector := metrics.NewCollector()
	var (
		mu       sync.Mutex
		results  Results
		firstErr error
		wg       sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for id := range task {
				match, moves, err := runGame(ctx, id, cfg.Seed)
				if err == nil {
					collector.Add(match)
				}
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = fmt.Errorf("game %d: %w", id, err)
					}
					mu.Unlock()
					continue
				}
				results.Games = append(results.Games, metrics.GameRecord{ID: id, GameMetric: metrics.NewGameMetric(match)})
				results.Moves = append(results.Moves, moves...)
				mu.Unlock()
				log.Debug().Int("game", id).Int("result", match.Result).Msg("completed game")
			}
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return Results{}, firstErr
	}

	sort.Slice(results.Games, func(i, j int) bool { return results.Games[i].ID < results.Games[j].ID })
	sort.SliceStable(results.Moves, func(i, j int) bool {
		if results.Moves[i].Game != results.Moves[j].Game {
			return results.Moves[i].Game < results.Moves[j].Game
		}
		return results.Moves[i].Turn < results.Moves[j].Turn
	})
	results.Summary = collector.Complete()

	log.Info().
		Int("first_wins", results.Summary.FirstWins).
		Int("second_wins", results.Summary.SecondWins).
		Int("draws", results.Summary.Draws).
		Float64("avg_moves", results.Summary.AverageMoves()).
		Msg("completed self-play")
	return results, nil
}

// runGame executes a single game between two random agents
func runGame(ctx context.Context, id int, seed uint64) (gamemaster.Match, []metrics.MoveRecord, error) {
	base := seed + 2*uint64(id)
	first := player.New(player.WithSeed(base))
	second := player.New(player.WithSeed(base + 1))

	var moves []metrics.MoveRecord
	gm := gamemaster.NewGameMaster(first, second, gamemaster.WithObserver(func(u gamemaster.Update) {
		moves = append(moves, metrics.MoveRecord{Game: id, MoveMetric: metrics.NewMoveMetric(u)})
	}))

	match, err := gm.Run(ctx)
	if err != nil {
		return match, nil, err
	}
	return match, moves, nil
}
