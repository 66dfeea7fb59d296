package game

import "fmt"

// Move places a disc on the empty square at (Row, Col).
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
