package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRandomAgent(t *testing.T) {
	t.Run("same seed replays the same game", func(t *testing.T) {
		play := func(seed uint64) []game.StateHash {
			a := NewRandomAgent(seed)
			var state game.State = game.NewPosition()
			var hashes []game.StateHash
			for i := 0; i < 30 && !state.IsTerminal(); i++ {
				next, _, err := a.FindMove(context.Background(), state)
				require.NoError(t, err)
				hashes = append(hashes, next.Hash())
				state = next
			}
			return hashes
		}

		require.Equal(t, play(3), play(3))
	})

	t.Run("picks a legal successor", func(t *testing.T) {
		root := game.NewPosition()
		next, _, err := NewRandomAgent(1).FindMove(context.Background(), root)

		require.NoError(t, err)
		require.Contains(t, root.Successors(), next)
	})

	t.Run("no legal moves", func(t *testing.T) {
		p, err := game.Parse("....................w........... r")
		require.NoError(t, err)

		_, _, err = NewRandomAgent(1).FindMove(context.Background(), p)
		require.Error(t, err)
	})
}

func TestFromConfig(t *testing.T) {
	t.Run("search agent", func(t *testing.T) {
		a, err := FromConfig(metrics.AgentConfig{ID: 1, Kind: "search", Depth: 2, Evaluate: "outcome", Algorithm: "minimax", Goroutines: 2, Duration: time.Minute})
		require.NoError(t, err)

		next, metric, err := a.FindMove(context.Background(), game.NewPosition())

		require.NoError(t, err)
		require.NotNil(t, next)
		require.Equal(t, 2, metric.Depth, "Search agents should report their search metrics")
		require.Equal(t, 2, metric.Goroutines)
		require.Positive(t, metric.Evaluated)
	})

	t.Run("kind defaults to search", func(t *testing.T) {
		a, err := FromConfig(metrics.AgentConfig{ID: 1})
		require.NoError(t, err)
		require.IsType(t, searchAgent{}, a)
	})

	t.Run("random agent", func(t *testing.T) {
		a, err := FromConfig(metrics.AgentConfig{ID: 2, Kind: "random", Seed: 5})
		require.NoError(t, err)
		require.IsType(t, &randomAgent{}, a)
	})

	t.Run("invalid configs", func(t *testing.T) {
		for _, config := range []metrics.AgentConfig{
			{ID: 1, Kind: "oracle"},
			{ID: 2, Depth: -1},
			{ID: 3, Algorithm: "expectimax"},
			{ID: 4, Evaluate: "mobility"},
		} {
			_, err := FromConfig(config)
			require.Error(t, err, "%+v should be rejected", config)
		}
	})
}
