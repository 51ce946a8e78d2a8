package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"context"
)

type Agent interface {
	// FindMove returns the chosen successor of state and performance metrics (if collected)
	// from the search that picked it
	FindMove(ctx context.Context, state game.State) (game.State, metrics.SearchMetric, error)
}
