package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"checkers/searcher/agent"
	"checkers/server"
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedAgent always answers with the same state or error
type fixedAgent struct {
	state game.State
	err   error
}

func (a fixedAgent) FindMove(ctx context.Context, state game.State) (game.State, metrics.SearchMetric, error) {
	return a.state, metrics.SearchMetric{}, a.err
}

func TestLocalEngine(t *testing.T) {
	t.Run("random game plays legal moves to the end", func(t *testing.T) {
		start := game.NewPosition()
		e := NewLocalEngine(start, []agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)}, MaxMoves)
		var history []game.State
		e.OnMove = func(step int, state game.State) {
			require.Equal(t, len(history)+1, step)
			history = append(history, state)
		}

		winner, gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.True(t, e.State.IsTerminal(), "Game should run until it ends")
		require.Equal(t, e.State.Winner(), winner)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, "red", gameMetric.StartingPlayer)
		require.Equal(t, len(history), gameMetric.TotalMoves)
		require.Len(t, moveMetrics, len(history))

		var previous game.State = start
		for i, state := range history {
			require.Contains(t, previous.Successors(), state, "Move %d should be legal", i+1)
			require.Equal(t, previous.Player(), moveMetrics[i].Player)
			require.Equal(t, state.(*game.Position).LastMove().String(), moveMetrics[i].Move)
			previous = state
		}
	})

	t.Run("turn limit", func(t *testing.T) {
		e := NewLocalEngine(game.NewPosition(), []agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)}, 6)

		winner, gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, "", winner)
		require.Equal(t, 6, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 6)
	})

	t.Run("illegal move", func(t *testing.T) {
		start := game.NewPosition()
		e := NewLocalEngine(start, []agent.Agent{fixedAgent{state: start}, agent.NewRandomAgent(1)}, 10)

		_, _, _, err := e.Run(context.Background())

		require.ErrorIs(t, err, ErrIllegalMove, "Passing is not a legal move")
	})

	t.Run("agent error", func(t *testing.T) {
		boom := errors.New("boom")
		e := NewLocalEngine(game.NewPosition(), []agent.Agent{agent.NewRandomAgent(1), fixedAgent{err: boom}}, 10)

		_, _, moveMetrics, err := e.Run(context.Background())

		require.ErrorIs(t, err, boom)
		require.Len(t, moveMetrics, 1, "Moves before the failure should be kept")
	})

	t.Run("cancelled game stops", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		searchAgent := agent.NewSearchAgent(searcher.NewAlphaBeta(), 6)
		e := NewLocalEngine(game.NewPosition(), []agent.Agent{searchAgent, searchAgent}, MaxMoves)
		e.OnMove = func(step int, state game.State) {
			if step == 3 {
				cancel()
			}
		}

		winner, gameMetric, moveMetrics, err := e.Run(ctx)

		require.ErrorIs(t, err, context.Canceled, "Cancellation should end the game with an error")
		require.Equal(t, "", winner)
		require.Empty(t, gameMetric.Winner)
		require.Len(t, moveMetrics, 3, "No move should be played after cancellation")
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		searchAgent := agent.NewSearchAgent(searcher.NewAlphaBeta(), 6)
		e := NewLocalEngine(game.NewPosition(), []agent.Agent{searchAgent, searchAgent}, MaxMoves)

		_, _, moveMetrics, err := e.Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, moveMetrics)
	})

	t.Run("requires two agents", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocalEngine(game.NewPosition(), []agent.Agent{agent.NewRandomAgent(1)}, 10)
		})
	})
}

func TestRemoteAgent(t *testing.T) {
	srv := httptest.NewServer(server.NewRouter(searcher.NewAlphaBeta(), 3))
	defer srv.Close()

	t.Run("plays against a local agent", func(t *testing.T) {
		remote := RemoteAgent{URL: srv.URL, Depth: 2, Client: srv.Client()}
		e := NewLocalEngine(game.NewPosition(), []agent.Agent{remote, agent.NewRandomAgent(4)}, 8)

		_, gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, 8, gameMetric.TotalMoves)
		require.Equal(t, 2, moveMetrics[0].Depth)
		require.Positive(t, moveMetrics[0].Evaluated, "Remote search statistics should be reported")
	})

	t.Run("server errors are returned", func(t *testing.T) {
		remote := RemoteAgent{URL: srv.URL, Depth: -1}

		_, _, err := remote.FindMove(context.Background(), game.NewPosition())

		require.ErrorContains(t, err, "422")
	})
}
