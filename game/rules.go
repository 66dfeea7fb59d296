package game

// captures reports whether a disc placed by side at (row, col) flanks at
// least one opposing disc along the direction delta: the immediate neighbor
// must be an opposing disc and the run of opposing discs must end on one of
// side's own discs before the edge of the board.
func (b Board) captures(row, col int, delta [2]int, side Cell) bool {
	opponent := side.Opponent()
	r, c := row+delta[0], col+delta[1]
	if !inBounds(r, c) || b[r][c] != opponent {
		return false
	}
	for inBounds(r, c) && b[r][c] == opponent {
		r += delta[0]
		c += delta[1]
	}
	return inBounds(r, c) && b[r][c] == side
}

// IsCapturing reports whether placing side's disc on the empty square at
// (row, col) captures in at least one direction. The square must be empty;
// placements on occupied squares never capture.
func (b Board) IsCapturing(row, col int, side Cell) bool {
	if b.At(row, col) != Empty {
		return false
	}
	for _, delta := range directions {
		if b.captures(row, col, delta, side) {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move for side in row-major order. A move is
// legal only on an empty square and only if it captures: the mandatory
// capture rule is an invariant of move generation, not a player choice.
// Callers rely on the row-major ordering (the AI falls back to "first move in
// the list" semantics).
func (b Board) LegalMoves(side Cell) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == Empty && b.IsCapturing(row, col, side) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Apply places side's disc at the move square and flips every flanked run of
// opposing discs, returning the resulting position. The receiver is copied in,
// so the caller's board is left untouched. Apply trusts that the move is
// legal; validate with LegalMoves or IsCapturing first.
func (b Board) Apply(move Move, side Cell) Board {
	opponent := side.Opponent()
	b[move.Row][move.Col] = side
	for _, delta := range directions {
		if !b.captures(move.Row, move.Col, delta, side) {
			continue
		}
		r, c := move.Row+delta[0], move.Col+delta[1]
		for b[r][c] == opponent {
			b[r][c] = side
			r += delta[0]
			c += delta[1]
		}
	}
	return b
}

// IsTerminal reports whether the game is over: neither side has a legal move.
// A position where only the side to move is stuck is a forced pass, not a
// terminal position.
func (b Board) IsTerminal() bool {
	return len(b.LegalMoves(Dark)) == 0 && len(b.LegalMoves(Light)) == 0
}
