package game

import "slices"

// Successors returns every position reachable in one move, in a fixed order: squares
// ascending, then directions, then jump continuations depth-first. Captures are mandatory, so
// when any jump exists only jump sequences are returned.
func (p *Position) Successors() []State {
	if p.quiet >= DrawPlies {
		return nil
	}

	children := p.jumps()
	if len(children) == 0 {
		children = p.steps()
	}

	states := make([]State, len(children))
	for i, child := range children {
		states[i] = child
	}
	return states
}

func (p *Position) steps() []*Position {
	var children []*Position
	for sq, piece := range p.cells {
		if !piece.Owns(p.next) {
			continue
		}
		for _, dir := range directions(piece) {
			to := neighbors[sq][dir]
			if to < 0 || !p.cells[to].IsEmpty() {
				continue
			}
			cells := p.cells
			cells[sq] = Empty
			cells[to] = piece

			quiet := p.quiet + 1
			if !piece.IsKing() {
				quiet = 0 // A man move is progress
				if promotes(p.next, to) {
					cells[to] |= KingCell
				}
			}
			children = append(children, p.child(cells, newMove([]int{sq, to}, nil), quiet))
		}
	}
	return children
}

func (p *Position) jumps() []*Position {
	var children []*Position
	for sq, piece := range p.cells {
		if piece.Owns(p.next) {
			p.jumpFrom(p.cells, sq, []int{sq}, nil, &children)
		}
	}
	return children
}

// jumpFrom extends a jump sequence ending on from. Jumped pieces are removed as they are
// captured, and a man that reaches the far row is crowned and stops.
func (p *Position) jumpFrom(cells [NumSquares]Cell, from int, path, captured []int, out *[]*Position) {
	piece := cells[from]
	opponent := p.next.Other()
	extended := false

	for _, dir := range directions(piece) {
		over, land := neighbors[from][dir], landings[from][dir]
		if land < 0 || !cells[over].Owns(opponent) || !cells[land].IsEmpty() {
			continue
		}
		extended = true

		next := cells
		next[from], next[over] = Empty, Empty
		next[land] = piece
		nextPath := append(slices.Clone(path), land)
		nextCaptured := append(slices.Clone(captured), over)

		if !piece.IsKing() && promotes(p.next, land) {
			next[land] |= KingCell
			*out = append(*out, p.child(next, newMove(nextPath, nextCaptured), 0))
			continue
		}
		p.jumpFrom(next, land, nextPath, nextCaptured, out)
	}

	if !extended && len(captured) > 0 {
		*out = append(*out, p.child(cells, newMove(path, captured), 0))
	}
}
