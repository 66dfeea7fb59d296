package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMovesStartingPosition(t *testing.T) {
	b := NewBoard()

	t.Run("dark to move", func(t *testing.T) {
		moves := b.LegalMoves(Dark)
		want := []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}
		require.Equal(t, want, moves, "Dark's four opening moves in row-major order")
	})

	t.Run("light to move", func(t *testing.T) {
		moves := b.LegalMoves(Light)
		want := []Move{{2, 4}, {3, 5}, {4, 2}, {5, 3}}
		require.Equal(t, want, moves, "Light's four opening moves in row-major order")
	})
}

func TestLegalMovesInvariants(t *testing.T) {
	// Walk a few plies from the start, greedily playing the first legal move,
	// and check the move-generation contract at every position along the way.
	b := NewBoard()
	side := Dark
	for ply := 0; ply < 12; ply++ {
		moves := b.LegalMoves(side)
		if len(moves) == 0 {
			side = side.Opponent()
			continue
		}

		for _, m := range moves {
			require.Equal(t, Empty, b.At(m.Row, m.Col), "legal moves are only generated on empty squares")
			require.True(t, b.IsCapturing(m.Row, m.Col, side), "every legal move must capture")

			applied := b.Apply(m, side)
			flipped := 0
			for r := 0; r < Size; r++ {
				for c := 0; c < Size; c++ {
					if (r != m.Row || c != m.Col) && applied[r][c] != b[r][c] {
						flipped++
					}
				}
			}
			require.Positive(t, flipped, "move %s must flip at least one disc", m)
		}

		b = b.Apply(moves[0], side)
		side = side.Opponent()
	}
}

func TestApplyOpeningMove(t *testing.T) {
	b := NewBoard().Apply(Move{Row: 2, Col: 3}, Dark)

	want := boardFrom(t, [Size]string{
		"--------",
		"--------",
		"---d----",
		"---dd---",
		"---dl---",
		"--------",
		"--------",
		"--------",
	})
	require.Equal(t, want, b, "placing at (2,3) flips the flanked light disc at (3,3)")
	require.Equal(t, 4, b.Score(Dark))
	require.Equal(t, 1, b.Score(Light))
}

func TestApplyIsDeterministic(t *testing.T) {
	b := NewBoard()
	move := Move{Row: 4, Col: 5}

	first := b.Apply(move, Dark)
	second := b.Apply(move, Dark)

	require.Equal(t, first, second, "applying the same move to the same board twice must match")
}

func TestApplyGrowsOccupancyByOne(t *testing.T) {
	b := NewBoard()
	side := Dark
	for ply := 0; ply < 16; ply++ {
		moves := b.LegalMoves(side)
		if len(moves) == 0 {
			side = side.Opponent()
			continue
		}

		before := b.Score(Dark) + b.Score(Light)
		b = b.Apply(moves[len(moves)/2], side)
		after := b.Score(Dark) + b.Score(Light)

		require.Equal(t, before+1, after, "flips recolor discs; only the placement adds one")
		side = side.Opponent()
	}
}

func TestApplyFlipsMultipleDirections(t *testing.T) {
	// Dark at (3,3) flanks the light run (3,2)(3,1) westward against the
	// dark disc at (3,0), and the light disc at (2,3) northward against the
	// dark disc at (1,3). One placement, flips along two directions.
	b := boardFrom(t, [Size]string{
		"--------",
		"---d----",
		"---l----",
		"dll-----",
		"--------",
		"--------",
		"--------",
		"--------",
	})

	applied := b.Apply(Move{Row: 3, Col: 3}, Dark)

	want := boardFrom(t, [Size]string{
		"--------",
		"---d----",
		"---d----",
		"dddd----",
		"--------",
		"--------",
		"--------",
		"--------",
	})
	require.Equal(t, want, applied)
	require.Equal(t, 0, applied.Score(Light), "all three flanked light discs flip")
}

func TestIsCapturingRoundTrip(t *testing.T) {
	// IsCapturing must agree with Apply on every empty square: capturing
	// means applying changes at least one cell besides the placement.
	b := NewBoard()
	for _, side := range []Cell{Dark, Light} {
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				if b[r][c] != Empty {
					continue
				}

				applied := b.Apply(Move{Row: r, Col: c}, side)
				changed := false
				for ar := 0; ar < Size; ar++ {
					for ac := 0; ac < Size; ac++ {
						if (ar != r || ac != c) && applied[ar][ac] != b[ar][ac] {
							changed = true
						}
					}
				}

				require.Equal(t, b.IsCapturing(r, c, side), changed,
					"capture detection and flip execution disagree at (%d,%d) for %s", r, c, side)
			}
		}
	}
}

func TestIsCapturingOccupiedSquare(t *testing.T) {
	b := NewBoard()
	require.False(t, b.IsCapturing(3, 3, Dark), "moves onto occupied squares never capture")
	require.False(t, b.IsCapturing(4, 3, Light), "moves onto occupied squares never capture")
}

func TestIsTerminal(t *testing.T) {
	t.Run("starting position is live", func(t *testing.T) {
		require.False(t, NewBoard().IsTerminal())
	})

	t.Run("one stuck side is a forced pass, not game over", func(t *testing.T) {
		b := boardFrom(t, [Size]string{
			"ld------",
			"--------",
			"--------",
			"--------",
			"--------",
			"--------",
			"--------",
			"--------",
		})

		require.Empty(t, b.LegalMoves(Dark), "Dark has nothing to flip")
		require.NotEmpty(t, b.LegalMoves(Light), "Light can flank the dark disc")
		require.False(t, b.IsTerminal())
	})

	t.Run("both sides stuck ends the game", func(t *testing.T) {
		b := boardFrom(t, [Size]string{
			"dd------",
			"dd------",
			"--------",
			"--------",
			"--------",
			"--------",
			"--------",
			"--------",
		})

		require.Empty(t, b.LegalMoves(Dark))
		require.Empty(t, b.LegalMoves(Light))
		require.True(t, b.IsTerminal())
	})
}
