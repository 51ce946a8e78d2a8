package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(ab *AlphaBeta)

// Result is the outcome of one ChooseMove call.
type Result struct {
	Position  game.State // Chosen successor of the root
	Value     int        // Backed-up value for the player to move at the root
	Evaluated int64      // Static evaluations performed by this call
	Nodes     int64
	Cutoffs   int64
	Completed int // Root successors searched to the full depth
	Stopped   StopReason
	Metric    metrics.SearchMetric // Zero unless WithMetrics is set
}

type AlphaBeta struct {
	goroutines int
	duration   time.Duration
	evaluate   game.Evaluate
	algorithm  Algorithm
	metrics    metrics.Collector
}

// WithDuration bounds every search by a time budget on top of the caller's context.
func WithDuration(duration time.Duration) Option {
	return func(ab *AlphaBeta) {
		if duration > 0 {
			ab.duration = duration
		}
	}
}

// WithGoroutines splits the root successors across the given number of workers.
func WithGoroutines(goroutines int) Option {
	return func(ab *AlphaBeta) {
		if goroutines > 0 {
			ab.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithAlgorithm(algorithm Algorithm) Option {
	return func(ab *AlphaBeta) {
		ab.algorithm = algorithm
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		goroutines: 1,
		evaluate:   game.EvaluateMaterial,
		algorithm:  Negamax,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// ChooseMove searches depth plies below each successor of root and returns the successor with
// the best worst-case value for the player to move at root, ties going to the first generated.
// The root is always expanded, so depth 0 evaluates the root successors statically.
//
// The search stops early when ctx is done (or the WithDuration budget runs out); it then
// returns the best fully searched successor and reports why in Result.Stopped.
func (ab *AlphaBeta) ChooseMove(ctx context.Context, root game.State, depth int) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: negative depth %d", ErrPrecondition, depth)
	}
	if root.IsTerminal() {
		return Result{}, fmt.Errorf("%w: root state is terminal", ErrPrecondition)
	}
	children := root.Successors()
	if len(children) == 0 {
		return Result{}, fmt.Errorf("%w: root state has no successors", ErrPrecondition)
	}

	if ab.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ab.duration)
		defer cancel()
	}

	start := time.Now()
	ab.metrics.Start(ab.goroutines, depth)

	s := &search{ctx: ctx, evaluate: ab.evaluate, algorithm: ab.algorithm}
	var result Result
	var err error
	if ab.goroutines > 1 && len(children) > 1 {
		result, err = s.rootParallel(children, depth, ab.goroutines)
	} else {
		result, err = s.root(children, depth)
	}
	if err != nil {
		return Result{}, err
	}

	result.Evaluated = s.evaluated.Load()
	result.Nodes = s.nodes.Load()
	result.Cutoffs = s.cutoffs.Load()

	ab.metrics.AddEvaluated(result.Evaluated)
	ab.metrics.AddNodes(result.Nodes)
	ab.metrics.AddCutoffs(result.Cutoffs)
	ab.metrics.SetStopped(result.Stopped.String())
	result.Metric = ab.metrics.Complete()

	log.Debug().
		Str("algorithm", ab.algorithm.String()).
		Int("depth", depth).
		Int("value", result.Value).
		Int64("evaluated", result.Evaluated).
		Int64("nodes", result.Nodes).
		Int("completed", result.Completed).
		Str("stopped", result.Stopped.String()).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")

	return result, nil
}
