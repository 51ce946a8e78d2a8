package searcher

import (
	"checkers/game"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

// search holds the state shared by every node of one ChooseMove call.
type search struct {
	ctx       context.Context
	evaluate  game.Evaluate
	algorithm Algorithm
	evaluated atomic.Int64
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func (s *search) root(children []game.State, depth int) (Result, error) {
	alpha, beta := -Infinity, Infinity
	result := Result{}
	interrupted := false

	for _, child := range children {
		if s.ctx.Err() != nil {
			interrupted = true
			break
		}
		value, err := s.value(child, depth-1, alpha, beta)
		if errors.Is(err, errStopped) {
			interrupted = true // Partial subtree, its value is unreliable
			break
		}
		if err != nil {
			return Result{}, err
		}

		result.Completed++
		// Strict comparison keeps the first generated move on ties
		if result.Position == nil || value > alpha {
			alpha = max(alpha, value)
			result.Position, result.Value = child, value
		}
	}

	return s.finish(s.ctx, result, children, interrupted), nil
}

// finish falls back to the first successor's static value when no root successor was fully
// searched, and records why the search stopped.
func (s *search) finish(ctx context.Context, result Result, children []game.State, interrupted bool) Result {
	if result.Position == nil {
		result.Position, result.Value = children[0], s.leaf(children[0])
	}
	if interrupted {
		result.Stopped = StopCanceled
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			result.Stopped = StopDeadline
		}
	}
	return result
}

// value returns the backed-up value of a root successor for the player to move at the root.
func (s *search) value(child game.State, depth, alpha, beta int) (int, error) {
	if s.algorithm == Minimax {
		return s.minimax(child, depth, alpha, beta, false)
	}
	value, err := s.negamax(child, depth, -beta, -alpha)
	return -value, err
}

// leaf scores a state for the player who moved into it
func (s *search) leaf(state game.State) int {
	s.evaluated.Add(1)
	return s.evaluate(state)
}

func (s *search) expand(state game.State) ([]game.State, error) {
	if err := s.ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errStopped, err)
	}
	children := state.Successors()
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: player %s, state %d", ErrGeneratorContract, state.Player(), state.Hash())
	}
	s.nodes.Add(1)
	return children, nil
}

// negamax returns the value of state for its player to move, clamped to [alpha, beta].
func (s *search) negamax(state game.State, depth, alpha, beta int) (int, error) {
	if depth <= 0 || state.IsTerminal() {
		return -s.leaf(state), nil
	}

	children, err := s.expand(state)
	if err != nil {
		return 0, err
	}

	for _, child := range children {
		value, err := s.negamax(child, depth-1, -beta, -alpha)
		if err != nil {
			return 0, err
		}
		alpha = max(alpha, -value)
		if alpha >= beta {
			s.cutoffs.Add(1)
			return beta, nil
		}
	}
	return alpha, nil
}

// minimax returns the value of state for the root player, who is to move in maximizing nodes.
func (s *search) minimax(state game.State, depth, alpha, beta int, maximizing bool) (int, error) {
	if depth <= 0 || state.IsTerminal() {
		score := s.leaf(state)
		if maximizing { // The opponent moved into this state
			return -score, nil
		}
		return score, nil
	}

	children, err := s.expand(state)
	if err != nil {
		return 0, err
	}

	if maximizing {
		for _, child := range children {
			value, err := s.minimax(child, depth-1, alpha, beta, false)
			if err != nil {
				return 0, err
			}
			alpha = max(alpha, value)
			if alpha >= beta {
				s.cutoffs.Add(1)
				return beta, nil
			}
		}
		return alpha, nil
	}

	for _, child := range children {
		value, err := s.minimax(child, depth-1, alpha, beta, true)
		if err != nil {
			return 0, err
		}
		beta = min(beta, value)
		if beta <= alpha {
			s.cutoffs.Add(1)
			return alpha, nil
		}
	}
	return beta, nil
}
