package game

// Any game that aims to be searchable by the alpha-beta agent implements State. The searcher
// package only ever sees this interface; Position is the checkers implementation.

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	Successors() []State
	IsTerminal() bool
	Winner() string
	Hash() StateHash
}

// Evaluate scores a state from the perspective of the player who made the last move, i.e. the
// opponent of State.Player(). Evaluations must be pure and defined for every reachable state,
// terminal ones included.
type Evaluate func(State) int
