package searcher

import "othello/experiments/metrics"

// minimax scores the subtree under n with alpha-beta pruning and records the
// result in n.value. Pruning never changes the value of a visited node; it
// only skips siblings that cannot influence the result, and those skipped
// nodes keep an unpopulated value slot.
func minimax(n *node, depth, alpha, beta int, maximizing bool, collector metrics.Collector) int {
	if depth == 0 || len(n.children) == 0 || n.board.IsTerminal() {
		n.value = n.board.Heuristic()
		collector.AddLeaf()
		return n.value
	}

	if maximizing {
		best := -infinity
		for _, child := range n.children {
			value := minimax(child, depth-1, alpha, beta, false, collector)
			if value > best {
				best = value
			}
			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				collector.AddCutoff()
				break
			}
		}
		n.value = best
		return best
	}

	worst := infinity
	for _, child := range n.children {
		value := minimax(child, depth-1, alpha, beta, true, collector)
		if value < worst {
			worst = value
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			collector.AddCutoff()
			break
		}
	}
	n.value = worst
	return worst
}
