package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// node is one position in the materialized game tree. Each node owns its own
// board snapshot and exclusively owns its children, so the tree is a strict
// tree: no sharing, no cycles, and releasing the root releases everything.
type node struct {
	board    game.Board
	side     game.Cell   // Side to move at this position
	moves    []game.Move // Legal moves for side, row-major
	children []*node     // One child per move, in move-list order
	value    int         // Populated by minimax for visited nodes
}

// buildTree expands every position reachable from board within depth plies,
// alternating the side to move at each level. A node becomes a leaf when the
// depth budget runs out or when the side to move has no legal moves; the
// latter is not necessarily game over (the opponent may still have moves),
// but the search scores any leaf directly with the heuristic.
func buildTree(board game.Board, depth int, side game.Cell, collector metrics.Collector) *node {
	n := &node{
		board: board,
		side:  side,
		moves: board.LegalMoves(side),
	}
	collector.AddNode()

	if depth > 0 && len(n.moves) > 0 {
		opponent := side.Opponent()
		n.children = make([]*node, 0, len(n.moves))
		for _, move := range n.moves {
			child := board.Apply(move, side)
			n.children = append(n.children, buildTree(child, depth-1, opponent, collector))
		}
	}

	return n
}
