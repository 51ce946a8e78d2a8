package game

import (
	"strconv"
	"strings"
)

// Move describes how a position was reached from its parent. Squares are 1-based, as in
// standard draughts notation.
type Move struct {
	Path     []int // Visited squares, origin first
	Captures []int // Jumped squares, in jump order
}

func newMove(path, captures []int) Move {
	m := Move{Path: make([]int, len(path))}
	for i, sq := range path {
		m.Path[i] = sq + 1
	}
	if len(captures) > 0 {
		m.Captures = make([]int, len(captures))
		for i, sq := range captures {
			m.Captures[i] = sq + 1
		}
	}
	return m
}

func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

// String renders steps as "11-15" and jumps as "9x18x27".
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	squares := make([]string, len(m.Path))
	for i, sq := range m.Path {
		squares[i] = strconv.Itoa(sq)
	}
	return strings.Join(squares, sep)
}
