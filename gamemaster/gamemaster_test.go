package gamemaster

import (
	"context"
	"io"
	"testing"

	"reversi/communication"
	"reversi/game"
	"reversi/player"

	"github.com/stretchr/testify/require"
)

type agentFunc func(msg communication.Message) (*game.Action, error)

func (f agentFunc) Handle(msg communication.Message) (*game.Action, error) {
	return f(msg)
}

// firstLegal plays the first legal action on its own copy of the board.
func firstLegal() Agent {
	var b game.Board
	return agentFunc(func(msg communication.Message) (*game.Action, error) {
		switch msg.Kind {
		case communication.InitMessage:
			b = game.NewBoard()
		case communication.PlayedMessage:
			return nil, b.Apply(msg.Action)
		case communication.WaitMessage:
			a := b.LegalActions()[0]
			return &a, b.Apply(a)
		}
		return nil, nil
	})
}

func TestRunRandomPlayers(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		first := player.New(player.WithSeed(seed))
		second := player.New(player.WithSeed(seed * 31))
		updates := 0

		gm := NewGameMaster(first, second, WithObserver(func(u Update) {
			updates++
			require.Equal(t, u.Hash, first.Board().Hash(), "turn %d: first agent out of step", u.Turn)
			require.Equal(t, u.Hash, second.Board().Hash(), "turn %d: second agent out of step", u.Turn)
			require.Positive(t, u.Legal)
		}))

		match, err := gm.Run(context.Background())
		require.NoError(t, err)

		require.True(t, match.Board.IsEnd())
		require.True(t, first.Board().IsEnd())
		require.True(t, second.Board().IsEnd(), "both agents should see the end together")
		require.Equal(t, match.Board.Result(), match.Result)
		require.Equal(t, match.Board.Winner(), match.Winner)
		require.Equal(t, updates, len(match.Log))
		require.Equal(t, match.Moves+match.Passes, len(match.Log))
		require.LessOrEqual(t, match.Moves, game.Cells-4)
		require.Equal(t, 4+match.Moves, match.Board.Pieces())
		require.False(t, match.EndTime.Before(match.StartTime))

		for _, p := range []*player.Player{first, second} {
			got, ok := p.Result()
			require.True(t, ok, "res should reach both agents")
			require.Equal(t, match.Result, got)
		}
	}
}

func TestRunReplaysLog(t *testing.T) {
	match, err := NewGameMaster(firstLegal(), firstLegal()).Run(context.Background())
	require.NoError(t, err)

	b := game.NewBoard()
	for _, a := range match.Log {
		require.NoError(t, b.Apply(a))
	}
	require.Equal(t, match.Board, b)
}

func TestMatchIDsAreUnique(t *testing.T) {
	m1, err := NewGameMaster(firstLegal(), firstLegal()).Run(context.Background())
	require.NoError(t, err)
	m2, err := NewGameMaster(firstLegal(), firstLegal()).Run(context.Background())
	require.NoError(t, err)

	require.NotEqual(t, m1.ID, m2.ID)
	require.Equal(t, m1.Log, m2.Log, "deterministic agents replay the same game")
}

func TestRunOverLineProtocol(t *testing.T) {
	agents := make([]Agent, 2)
	done := make([]chan error, 2)
	closers := make([]io.Closer, 2)
	players := make([]*player.Player, 2)

	for i := range agents {
		toAgentR, toAgentW := io.Pipe()
		fromAgentR, fromAgentW := io.Pipe()
		p := player.New(player.WithSeed(uint64(i + 11)))
		players[i] = p
		done[i] = make(chan error, 1)
		go func(ch chan error) {
			ch <- p.Play(communication.NewStdio(toAgentR, fromAgentW))
			fromAgentW.Close()
		}(done[i])

		agents[i] = NewLineAgent(fromAgentR, toAgentW)
		closers[i] = toAgentW
	}

	match, err := NewGameMaster(agents[0], agents[1]).Run(context.Background())
	require.NoError(t, err)

	for i := range agents {
		require.NoError(t, closers[i].Close())
		require.NoError(t, <-done[i], "agent should exit cleanly on EOF")
		require.Equal(t, match.Board, players[i].Board())
	}
}

func TestRunRejectsBadAgents(t *testing.T) {
	t.Run("illegal placement", func(t *testing.T) {
		cheat := agentFunc(func(msg communication.Message) (*game.Action, error) {
			if msg.Kind == communication.WaitMessage {
				a := game.Put(0, 0)
				return &a, nil
			}
			return nil, nil
		})
		_, err := NewGameMaster(cheat, firstLegal()).Run(context.Background())

		var agentErr *AgentError
		require.ErrorAs(t, err, &agentErr)
		require.Equal(t, game.First, agentErr.Side)
		require.ErrorIs(t, err, game.ErrNoCapture)
		require.Contains(t, err.Error(), "first agent")
	})

	t.Run("silent on wait", func(t *testing.T) {
		silent := agentFunc(func(communication.Message) (*game.Action, error) { return nil, nil })
		_, err := NewGameMaster(firstLegal(), silent).Run(context.Background())

		var agentErr *AgentError
		require.ErrorAs(t, err, &agentErr)
		require.Equal(t, game.Second, agentErr.Side)
		require.ErrorIs(t, err, ErrNoReply)
	})

	t.Run("reply to init", func(t *testing.T) {
		chatty := agentFunc(func(communication.Message) (*game.Action, error) {
			a := game.Pass()
			return &a, nil
		})
		_, err := NewGameMaster(chatty, firstLegal()).Run(context.Background())
		require.ErrorIs(t, err, ErrUnexpected)
	})

	t.Run("agent error is attributed", func(t *testing.T) {
		_, err := NewGameMaster(firstLegal(), agentFunc(func(msg communication.Message) (*game.Action, error) {
			if msg.Kind == communication.PlayedMessage {
				return nil, io.ErrClosedPipe
			}
			return nil, nil
		})).Run(context.Background())

		require.ErrorIs(t, err, io.ErrClosedPipe)
		var agentErr *AgentError
		require.ErrorAs(t, err, &agentErr)
		require.Equal(t, game.Second, agentErr.Side)
	})
}

func TestRunLimits(t *testing.T) {
	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewGameMaster(firstLegal(), firstLegal()).Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("turn limit", func(t *testing.T) {
		match, err := NewGameMaster(firstLegal(), firstLegal(), WithMaxTurns(3)).Run(context.Background())
		require.ErrorIs(t, err, ErrTooManyTurns)
		require.Len(t, match.Log, 3)
	})
}
