package engine

import (
	"checkers/experiments/metrics"
	"context"
	"errors"
)

const MaxMoves = 10000

var ErrIllegalMove = errors.New("agent returned an illegal move")

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
