package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks uniformly among the legal successors.
// The same seed replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, state game.State) (game.State, metrics.SearchMetric, error) {
	successors := state.Successors()
	if len(successors) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("no legal moves for %s", state.Player())
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return successors[a.rng.Intn(len(successors))], metrics.SearchMetric{}, nil
}
