package game

import (
	"fmt"
	"strings"
)

// Size is the board edge length. The rules assume a square 8x8 grid.
const Size = 8

// Board is an 8x8 grid of cells, indexed by (row, col). It is a value type:
// assigning or passing a Board copies it, so speculative moves during search
// never alias the position they were derived from.
type Board [Size][Size]Cell

// directions holds the eight unit deltas to the neighboring squares. Capture
// detection and flip execution both walk these same deltas, so "is this move
// legal" and "what gets flipped" can never disagree.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewBoard returns the standard starting position: the center four squares
// occupied, Dark on the anti-diagonal.
func NewBoard() Board {
	var b Board
	b[3][3] = Light
	b[3][4] = Dark
	b[4][3] = Dark
	b[4][4] = Light
	return b
}

// At returns the cell at (row, col). Coordinates outside the board indicate a
// broken caller contract, not a game condition, and panic rather than return
// a default.
func (b Board) At(row, col int) Cell {
	if !inBounds(row, col) {
		panic(fmt.Sprintf("board access out of bounds: (%d, %d)", row, col))
	}
	return b[row][col]
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Score counts the squares occupied by side.
func (b Board) Score(side Cell) int {
	total := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == side {
				total++
			}
		}
	}
	return total
}

// String renders the board with row and column headers, empty squares as '-',
// Dark discs as 'd' and Light discs as 'l'.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("   0  1  2  3  4  5  6  7\n")
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d  ", row)
		for col := 0; col < Size; col++ {
			switch b[row][col] {
			case Dark:
				sb.WriteString("d  ")
			case Light:
				sb.WriteString("l  ")
			default:
				sb.WriteString("-  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
