package game

// Cell holds the content of one dark square: empty, or an owner bit plus an optional king bit.
type Cell uint8

const Empty Cell = 0

const (
	RedCell Cell = 1 << iota
	WhiteCell
	KingCell
)

// Side identifies one of the two players.
type Side uint8

const (
	Red   Side = iota // Moves first, towards higher rows
	White             // Moves towards lower rows
)

func (s Side) Other() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == Red {
		return "red"
	}
	return "white"
}

func (s Side) cell() Cell {
	if s == Red {
		return RedCell
	}
	return WhiteCell
}

func (c Cell) IsEmpty() bool {
	return c == Empty
}

func (c Cell) IsKing() bool {
	return c&KingCell != 0
}

// Owns reports whether the cell holds a piece of the given side.
func (c Cell) Owns(s Side) bool {
	return c&s.cell() != 0
}

func (c Cell) byte() byte {
	switch {
	case c.Owns(Red) && c.IsKing():
		return 'R'
	case c.Owns(Red):
		return 'r'
	case c.Owns(White) && c.IsKing():
		return 'W'
	case c.Owns(White):
		return 'w'
	default:
		return '.'
	}
}

func cellFromByte(b byte) (Cell, bool) {
	switch b {
	case '.':
		return Empty, true
	case 'r':
		return RedCell, true
	case 'R':
		return RedCell | KingCell, true
	case 'w':
		return WhiteCell, true
	case 'W':
		return WhiteCell | KingCell, true
	}
	return Empty, false
}
