package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax decides moves by materializing a depth-bounded game tree and
// scoring it with alpha-beta minimax. Dark plays as the maximizer, Light as
// the minimizer.
type Minimax struct {
	depth   int
	metrics metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:   DefaultDepth,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove runs one full AI decision for side: build the tree rooted at
// board, score it, and return the move whose child carries the root's optimal
// value. The tree lives only for this call. The side to move must have at
// least one legal move; callers decide pass-vs-play before searching.
func (m *Minimax) FindMove(board game.Board, side game.Cell) (game.Move, metrics.SearchMetric) {
	m.metrics.Start(m.depth)
	root := buildTree(board, m.depth, side, m.metrics)
	if len(root.moves) == 0 {
		panic("searcher: no legal moves for side to move")
	}

	maximizing := side == game.Dark
	best := minimax(root, m.depth, -infinity, infinity, maximizing, m.metrics)
	metric := m.metrics.Complete()

	move := root.bestMove(best)
	log.Debug().Msgf("%s picked %s with value %d from %d moves (%d nodes, %d leaves, %d cutoffs)",
		side, move, best, len(root.moves), metric.Nodes, metric.Leaves, metric.Cutoffs)
	return move, metric
}

// bestMove maps the root value back to the first child that achieves it.
// The root is searched with a full (-infinity, infinity) window, so no root
// child is ever pruned and a matching child always exists.
func (n *node) bestMove(value int) game.Move {
	for i, child := range n.children {
		if child.value == value {
			return n.moves[i]
		}
	}
	panic("searcher: root value matches no child")
}
