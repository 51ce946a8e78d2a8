package game

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// layout writes a position in notation from pieces keyed by 0-based square.
func layout(side string, pieces map[int]byte) string {
	cells := []byte(strings.Repeat(".", NumSquares))
	for sq, c := range pieces {
		cells[sq] = c
	}
	return string(cells) + " " + side
}

func mustParse(t *testing.T, s string) *Position {
	t.Helper()
	p, err := Parse(s)
	require.NoError(t, err)
	return p
}

func moves(p *Position) []string {
	return lo.Map(p.Successors(), func(s State, _ int) string {
		return s.(*Position).LastMove().String()
	})
}
