package searcher

import (
	"errors"
	"fmt"
	"math"
)

// Window bounds for the root search. Both negate without overflow.
const Infinity = math.MaxInt

var (
	// ErrPrecondition reports a call the search cannot serve: a negative depth or a root
	// without successors.
	ErrPrecondition = errors.New("search precondition violated")
	// ErrGeneratorContract reports a state that is not terminal but has no successors.
	ErrGeneratorContract = errors.New("non-terminal state has no successors")

	errStopped = errors.New("search stopped")
)

// Algorithm selects the formulation of the alpha-beta recursion. Both return the same moves,
// values and pruning decisions.
type Algorithm int

const (
	Negamax Algorithm = iota
	Minimax
)

func (a Algorithm) String() string {
	if a == Minimax {
		return "minimax"
	}
	return "negamax"
}

// ParseAlgorithm maps a configuration name to an Algorithm, defaulting to Negamax.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "", "negamax":
		return Negamax, nil
	case "minimax":
		return Minimax, nil
	}
	return Negamax, fmt.Errorf("unknown algorithm %q", name)
}

type StopReason int

const (
	StopNone     StopReason = iota
	StopDeadline            // Time budget or context deadline reached
	StopCanceled            // Context canceled by the caller
)

func (sr StopReason) String() string {
	switch sr {
	case StopDeadline:
		return "deadline"
	case StopCanceled:
		return "canceled"
	default:
		return "none"
	}
}
