package experiments

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

// randomAgent plays a uniformly random legal move. It is the depth-0 baseline
// the minimax agents are measured against.
type randomAgent struct {
	rng *rand.Rand
}

func newRandomAgent() *randomAgent {
	return &randomAgent{
		rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (a *randomAgent) FindMove(board game.Board, side game.Cell) (game.Move, metrics.SearchMetric) {
	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		panic("random agent: no legal moves for side to move")
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
