package searcher

import (
	"checkers/game"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// rootParallel searches root successors on several workers. Each successor gets the full
// window, so its value is exact, and the first strictly best successor in generation order is
// the same one the sequential root loop picks.
func (s *search) rootParallel(children []game.State, depth, goroutines int) (Result, error) {
	parent := s.ctx
	g, ctx := errgroup.WithContext(parent)
	s.ctx = ctx // A contract violation on one worker stops the others

	values := make([]int, len(children))
	done := make([]bool, len(children))
	var interrupted atomic.Bool

	tasks := make(chan int, len(children))
	for i := range children {
		tasks <- i
	}
	close(tasks)

	for range min(goroutines, len(children)) {
		g.Go(func() error {
			for i := range tasks {
				if ctx.Err() != nil {
					interrupted.Store(true)
					return nil
				}
				value, err := s.value(children[i], depth-1, -Infinity, Infinity)
				if errors.Is(err, errStopped) {
					interrupted.Store(true)
					return nil
				}
				if err != nil {
					return err
				}
				values[i], done[i] = value, true
			}
			return nil
		})
	}

	err := g.Wait()
	s.ctx = parent
	if err != nil {
		return Result{}, err
	}

	result := Result{}
	for i, child := range children {
		if !done[i] {
			continue
		}
		result.Completed++
		if result.Position == nil || values[i] > result.Value {
			result.Position, result.Value = child, values[i]
		}
	}

	return s.finish(parent, result, children, interrupted.Load()), nil
}
