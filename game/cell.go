package game

// Cell is the content of a single board square. Dark and Light double as
// player identifiers: the side to move is always one of the two disc colors.
type Cell int8

const (
	Empty Cell = iota
	Dark
	Light
)

// Opponent returns the opposing side.
func (c Cell) Opponent() Cell {
	switch c {
	case Dark:
		return Light
	case Light:
		return Dark
	default:
		panic("empty cell has no opponent")
	}
}

func (c Cell) String() string {
	switch c {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "empty"
	}
}
