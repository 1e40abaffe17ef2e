package metrics

import (
	"sync/atomic"
	"time"

	"reversi/game"
	"reversi/gamemaster"
)

type GameMetric struct {
	Match     string // Match ID
	Result    int    // Margin from First's perspective
	Winner    string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Moves     int
	Passes    int
}

type MoveMetric struct {
	Turn   int
	Side   string
	Action string
	Legal  int // Branching factor before the move
	First  int // Pieces after the move
	Second int
}

func NewGameMetric(m gamemaster.Match) GameMetric {
	return GameMetric{
		Match:     m.ID.String(),
		Result:    m.Result,
		Winner:    m.Winner.String(),
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Duration:  m.EndTime.Sub(m.StartTime),
		Moves:     m.Moves,
		Passes:    m.Passes,
	}
}

func NewMoveMetric(u gamemaster.Update) MoveMetric {
	return MoveMetric{
		Turn:   u.Turn,
		Side:   u.Side.String(),
		Action: u.Action.String(),
		Legal:  u.Legal,
		First:  u.Board.Count(game.First),
		Second: u.Board.Count(game.Second),
	}
}

// Summary aggregates finished matches.
type Summary struct {
	Games      int
	FirstWins  int
	SecondWins int
	Draws      int
	Wipeouts   int
	Moves      int
	Passes     int
}

func (s Summary) AverageMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Moves) / float64(s.Games)
}

// Collector is safe for use by concurrent match workers.
type Collector struct {
	games      atomic.Int32
	firstWins  atomic.Int32
	secondWins atomic.Int32
	draws      atomic.Int32
	wipeouts   atomic.Int32
	moves      atomic.Int32
	passes     atomic.Int32
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Add(m gamemaster.Match) {
	c.games.Add(1)
	switch m.Winner {
	case game.First:
		c.firstWins.Add(1)
	case game.Second:
		c.secondWins.Add(1)
	default:
		c.draws.Add(1)
	}
	if m.Board.Count(game.First) == 0 || m.Board.Count(game.Second) == 0 {
		c.wipeouts.Add(1)
	}
	c.moves.Add(int32(m.Moves))
	c.passes.Add(int32(m.Passes))
}

func (c *Collector) Complete() Summary {
	return Summary{
		Games:      int(c.games.Load()),
		FirstWins:  int(c.firstWins.Load()),
		SecondWins: int(c.secondWins.Load()),
		Draws:      int(c.draws.Load()),
		Wipeouts:   int(c.wipeouts.Load()),
		Moves:      int(c.moves.Load()),
		Passes:     int(c.passes.Load()),
	}
}
