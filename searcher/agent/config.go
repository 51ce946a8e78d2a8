package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"fmt"
)

// FromConfig builds the agent an experiment configuration describes.
func FromConfig(config metrics.AgentConfig) (Agent, error) {
	switch config.Kind {
	case "random":
		return NewRandomAgent(config.Seed), nil
	case "", "search":
	default:
		return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
	}

	if config.Depth < 0 {
		return nil, fmt.Errorf("agent %d: negative depth %d", config.ID, config.Depth)
	}
	algorithm, err := searcher.ParseAlgorithm(config.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}

	options := []searcher.Option{searcher.WithAlgorithm(algorithm), searcher.WithMetrics()}
	if config.Evaluate != "" {
		evaluate, ok := game.Evaluators[config.Evaluate]
		if !ok {
			return nil, fmt.Errorf("agent %d: unknown evaluation %q", config.ID, config.Evaluate)
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}

	return NewSearchAgent(searcher.NewAlphaBeta(options...), config.Depth), nil
}
