package engine

import (
	"testing"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/stretchr/testify/require"
)

// firstMoveAgent always plays the first legal move in row-major order.
type firstMoveAgent struct{}

func (firstMoveAgent) FindMove(board game.Board, side game.Cell) (game.Move, metrics.SearchMetric) {
	return board.LegalMoves(side)[0], metrics.SearchMetric{}
}

// illegalAgent ignores the rules entirely.
type illegalAgent struct{}

func (illegalAgent) FindMove(board game.Board, side game.Cell) (game.Move, metrics.SearchMetric) {
	return game.Move{Row: 0, Col: 0}, metrics.SearchMetric{}
}

func TestLocalSetup(t *testing.T) {
	e := Local(firstMoveAgent{}, firstMoveAgent{})

	require.Equal(t, game.NewBoard(), e.Board)
	require.Equal(t, game.Dark, e.Turn, "dark always moves first")
	require.Panics(t, func() { Local(nil, firstMoveAgent{}) })
}

func TestRunPlaysToCompletion(t *testing.T) {
	e := Local(firstMoveAgent{}, firstMoveAgent{})

	winner, gameMetric, moveMetrics := e.Run()

	require.True(t, e.Board.IsTerminal(), "the loop only stops when neither side can move")
	require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
	require.NotEmpty(t, moveMetrics)
	require.Equal(t, 1, moveMetrics[0].Step)
	require.Equal(t, game.Dark.String(), moveMetrics[0].Side, "dark plays the first move")

	dark := e.Board.Score(game.Dark)
	light := e.Board.Score(game.Light)
	switch winner {
	case game.Dark:
		require.Greater(t, dark, light)
		require.Equal(t, "dark", gameMetric.Winner)
	case game.Light:
		require.Greater(t, light, dark)
		require.Equal(t, "light", gameMetric.Winner)
	default:
		require.Equal(t, dark, light)
		require.Equal(t, "tie", gameMetric.Winner)
	}
}

func TestRunMinimaxAgents(t *testing.T) {
	dark := searcher.NewMinimax(searcher.WithDepth(2), searcher.WithMetrics())
	light := searcher.NewMinimax(searcher.WithDepth(1))

	e := Local(dark, light)
	_, gameMetric, moveMetrics := e.Run()

	require.True(t, e.Board.IsTerminal())
	require.Positive(t, gameMetric.TotalMoves)
	for _, mm := range moveMetrics {
		if mm.Side == game.Dark.String() {
			require.Equal(t, 2, mm.Depth)
			require.Positive(t, mm.Nodes, "the dark agent collects search metrics")
		}
	}
}

func TestRunPassesStuckSide(t *testing.T) {
	// Dark cannot move but Light can: the turn must pass without a move
	// record, then Light finishes the game.
	e := Local(firstMoveAgent{}, firstMoveAgent{})
	var board game.Board
	board[0][0] = game.Light
	board[0][1] = game.Dark
	e.Board = board
	e.Turn = game.Dark

	winner, gameMetric, moveMetrics := e.Run()

	require.Equal(t, game.Light, winner)
	require.Equal(t, 1, gameMetric.TotalMoves, "only light's capture is recorded")
	require.Len(t, moveMetrics, 1)
	require.Equal(t, game.Light.String(), moveMetrics[0].Side)
	require.Equal(t, 3, e.Board.Score(game.Light))
	require.Equal(t, 0, e.Board.Score(game.Dark))
}

func TestRunRejectsIllegalAgentMove(t *testing.T) {
	e := Local(illegalAgent{}, firstMoveAgent{})

	require.Panics(t, func() { e.Run() }, "an illegal agent move is a contract violation, not a game outcome")
}
