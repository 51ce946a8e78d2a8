package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"context"
)

type searchAgent struct {
	alphaBeta *searcher.AlphaBeta
	depth     int
}

// NewSearchAgent returns an agent that plays the alpha-beta choice at a fixed depth.
func NewSearchAgent(alphaBeta *searcher.AlphaBeta, depth int) Agent {
	return searchAgent{alphaBeta: alphaBeta, depth: depth}
}

func (a searchAgent) FindMove(ctx context.Context, state game.State) (game.State, metrics.SearchMetric, error) {
	result, err := a.alphaBeta.ChooseMove(ctx, state, a.depth)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	return result.Position, result.Metric, nil
}
