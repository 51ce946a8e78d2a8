package game

// The board is the 32 dark squares of an 8x8 draughts board, numbered row by row from red's
// side. Row 0 holds squares 1-4 (0-3 internally); on even rows the dark squares sit on the odd
// columns.

const NumSquares = 32

// Directions in generation order
const (
	downLeft = iota
	downRight
	upLeft
	upRight
)

var (
	redDirs   = []int{downLeft, downRight}
	whiteDirs = []int{upLeft, upRight}
	kingDirs  = []int{downLeft, downRight, upLeft, upRight}
)

var (
	neighbors [NumSquares][4]int // Adjacent square per direction, -1 off board
	landings  [NumSquares][4]int // Square two steps away per direction, -1 off board
)

func init() {
	deltas := [4][2]int{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
	for sq := 0; sq < NumSquares; sq++ {
		row, col := coords(sq)
		for dir, d := range deltas {
			neighbors[sq][dir] = square(row+d[0], col+d[1])
			landings[sq][dir] = square(row+2*d[0], col+2*d[1])
		}
	}
}

func coords(sq int) (row, col int) {
	row = sq / 4
	col = 2 * (sq % 4)
	if row%2 == 0 {
		col++
	}
	return row, col
}

// square maps board coordinates to a square index, -1 for light or off-board squares
func square(row, col int) int {
	if row < 0 || row > 7 || col < 0 || col > 7 || (row+col)%2 == 0 {
		return -1
	}
	return row*4 + col/2
}

func directions(piece Cell) []int {
	switch {
	case piece.IsKing():
		return kingDirs
	case piece.Owns(Red):
		return redDirs
	default:
		return whiteDirs
	}
}

// promotes reports whether a man of the given side landing on sq reaches the far row
func promotes(side Side, sq int) bool {
	row := sq / 4
	if side == Red {
		return row == 7
	}
	return row == 0
}
