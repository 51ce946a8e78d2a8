package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNotation = errors.New("invalid position notation")

// Parse reads a position written as "<32 cells> <r|w> [quiet]", where each cell is one of
// '.', 'r', 'R', 'w' or 'W' for squares 1 to 32.
func Parse(s string) (*Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 || len(fields) > 3 {
		return nil, fmt.Errorf("%w: expected 2 or 3 fields, got %d", ErrNotation, len(fields))
	}

	board := fields[0]
	if len(board) != NumSquares {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrNotation, NumSquares, len(board))
	}

	p := &Position{}
	for i := 0; i < NumSquares; i++ {
		c, ok := cellFromByte(board[i])
		if !ok {
			return nil, fmt.Errorf("%w: unknown cell %q at square %d", ErrNotation, board[i], i+1)
		}
		p.cells[i] = c
	}

	switch fields[1] {
	case "r":
		p.next = Red
	case "w":
		p.next = White
	default:
		return nil, fmt.Errorf("%w: unknown side %q", ErrNotation, fields[1])
	}

	if len(fields) == 3 {
		quiet, err := strconv.Atoi(fields[2])
		if err != nil || quiet < 0 {
			return nil, fmt.Errorf("%w: bad quiet counter %q", ErrNotation, fields[2])
		}
		p.quiet = quiet
	}

	return p, nil
}

// String writes the position in the notation read by Parse.
func (p *Position) String() string {
	var sb strings.Builder
	for _, c := range p.cells {
		sb.WriteByte(c.byte())
	}
	sb.WriteByte(' ')
	if p.next == Red {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('w')
	}
	if p.quiet > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(p.quiet))
	}
	return sb.String()
}

// Diagram draws the board as 8 lines of 8 characters, row 0 (squares 1-4) first.
func (p *Position) Diagram() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := square(row, col)
			if sq < 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteByte(p.cells[sq].byte())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
