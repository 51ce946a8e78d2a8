package searcher

import (
	"checkers/game"
	"time"

	"golang.org/x/exp/rand"
)

// mockState is a hand-built game tree node. score is the static value for the player who moved
// into the state.
type mockState struct {
	player   string
	score    int
	children []*mockState
	terminal bool
	hash     game.StateHash
	delay    time.Duration // Slows down successor generation
}

func (m *mockState) Player() string {
	return m.player
}

func (m *mockState) Successors() []game.State {
	time.Sleep(m.delay)
	states := make([]game.State, len(m.children))
	for i, child := range m.children {
		states[i] = child
	}
	return states
}

func (m *mockState) IsTerminal() bool {
	return m.terminal
}

func (m *mockState) Winner() string {
	return ""
}

func (m *mockState) Hash() game.StateHash {
	return m.hash
}

func mockEvaluate(s game.State) int {
	return s.(*mockState).score
}

func other(player string) string {
	if player == "a" {
		return "b"
	}
	return "a"
}

// node builds an interior state whose children are played by the other player
func node(player string, score int, children ...*mockState) *mockState {
	for _, child := range children {
		child.player = other(player)
	}
	return &mockState{player: player, score: score, children: children}
}

// leaf builds a terminal state
func leaf(score int) *mockState {
	return &mockState{score: score, terminal: true}
}

// randomTree builds a tree of the given height with 1 to maxWidth children per interior node.
// Some interior nodes are made terminal early.
func randomTree(r *rand.Rand, height, maxWidth int) *mockState {
	var build func(player string, height int) *mockState
	id := game.StateHash(0)
	build = func(player string, height int) *mockState {
		id++
		state := &mockState{player: player, score: r.Intn(41) - 20, hash: id}
		if height == 0 || r.Intn(10) == 0 {
			state.terminal = true
			return state
		}
		for range 1 + r.Intn(maxWidth) {
			state.children = append(state.children, build(other(player), height-1))
		}
		return state
	}
	root := build("a", height)
	root.terminal = false
	if len(root.children) == 0 {
		root.children = []*mockState{build("b", 0)}
	}
	return root
}

// fullNegamax is the unpruned reference: the value of state for its player to move
func fullNegamax(state *mockState, depth int) int {
	if depth <= 0 || state.terminal {
		return -state.score
	}
	best := -Infinity
	for _, child := range state.children {
		best = max(best, -fullNegamax(child, depth-1))
	}
	return best
}

// reference returns the index and value of the first best root successor without pruning
func reference(root *mockState, depth int) (int, int) {
	best, value := -1, 0
	for i, child := range root.children {
		v := -fullNegamax(child, depth-1)
		if best < 0 || v > value {
			best, value = i, v
		}
	}
	return best, value
}

func indexOf(root *mockState, state game.State) int {
	for i, child := range root.children {
		if child == state {
			return i
		}
	}
	return -1
}
