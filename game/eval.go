package game

// cornerWeight is the value of holding one of the four corner squares,
// relative to a single disc or a single available move.
const cornerWeight = 10

var corners = [4][2]int{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}}

// Heuristic scores the position with Dark as the maximizer: positive values
// favor Dark, negative values favor Light. The score is a fixed linear blend
// of mobility (available moves), material (discs on the board) and corner
// control, with corners worth cornerWeight discs each.
func (b Board) Heuristic() int {
	return b.sideTotal(Dark) - b.sideTotal(Light)
}

func (b Board) sideTotal(side Cell) int {
	total := len(b.LegalMoves(side)) + b.Score(side)
	for _, corner := range corners {
		if b[corner[0]][corner[1]] == side {
			total += cornerWeight
		}
	}
	return total
}
