package game

import (
	"encoding/binary"
	"hash/fnv"
)

// DrawPlies is the number of consecutive plies without a capture or a man move after which the
// game is drawn.
const DrawPlies = 50

// Position is a checkers position: the 32 dark squares plus the side to move. A Position is
// never modified once built; successors are always new values.
type Position struct {
	cells [NumSquares]Cell
	next  Side
	quiet int  // Plies since the last capture or man move
	last  Move // The move that produced this position (zero for a root)
}

// NewPosition returns the standard opening position with red to move.
func NewPosition() *Position {
	p := &Position{next: Red}
	for sq := 0; sq < 12; sq++ {
		p.cells[sq] = RedCell
		p.cells[NumSquares-1-sq] = WhiteCell
	}
	return p
}

// At returns the content of a square, numbered 1 to 32.
func (p *Position) At(square int) Cell {
	return p.cells[square-1]
}

// Next returns the side to move.
func (p *Position) Next() Side {
	return p.next
}

func (p *Position) Quiet() int {
	return p.quiet
}

func (p *Position) LastMove() Move {
	return p.last
}

func (p *Position) Player() string {
	return p.next.String()
}

// IsTerminal reports whether the game is over: the side to move is blocked or the no-progress
// limit is reached.
func (p *Position) IsTerminal() bool {
	return p.quiet >= DrawPlies || !p.hasMoves()
}

// Winner returns the winning side's name, "" while the game runs or when it is drawn.
func (p *Position) Winner() string {
	if p.quiet >= DrawPlies || p.hasMoves() {
		return ""
	}
	return p.next.Other().String()
}

func (p *Position) Hash() StateHash {
	hasher := fnv.New64a()

	hasher.Write([]byte{byte(p.next)})
	for _, c := range p.cells {
		hasher.Write([]byte{byte(c)})
	}
	binary.Write(hasher, binary.LittleEndian, int64(p.quiet))

	return StateHash(hasher.Sum64())
}

// Count returns the number of men and kings a side has on the board.
func (p *Position) Count(side Side) (men, kings int) {
	for _, c := range p.cells {
		if !c.Owns(side) {
			continue
		}
		if c.IsKing() {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

// hasMoves checks for any legal step or jump without building the successors
func (p *Position) hasMoves() bool {
	opponent := p.next.Other()
	for sq, piece := range p.cells {
		if !piece.Owns(p.next) {
			continue
		}
		for _, dir := range directions(piece) {
			to := neighbors[sq][dir]
			if to < 0 {
				continue
			}
			if p.cells[to].IsEmpty() {
				return true
			}
			land := landings[sq][dir]
			if land >= 0 && p.cells[to].Owns(opponent) && p.cells[land].IsEmpty() {
				return true
			}
		}
	}
	return false
}

func (p *Position) child(cells [NumSquares]Cell, move Move, quiet int) *Position {
	return &Position{
		cells: cells,
		next:  p.next.Other(),
		quiet: quiet,
		last:  move,
	}
}
