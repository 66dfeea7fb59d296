package searcher

// Hyperparameters for minimax

// DefaultDepth is the game-tree depth in plies when no depth option is given.
const DefaultDepth = 5

// infinity sits far above any reachable heuristic value; the maximizer's
// running best starts at -infinity and the minimizer's at +infinity.
const infinity = 1 << 30
