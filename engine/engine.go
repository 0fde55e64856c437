package engine

import (
	"github.com/silverrook/chessgo/chess"
	"github.com/silverrook/chessgo/search"
)

// SearchBest runs a fixed-depth negamax/alpha-beta search from b and
// returns the chosen successor position. This is spec §6's search_best.
func SearchBest(b chess.Board, depth int) chess.Board {
	return search.SearchBest[chess.Board](chessGame{}, b, depth)
}

// SearchWithin runs iterative deepening from b under a wall-clock budget
// in milliseconds and returns the deepest fully-completed result. This
// is spec §6's search_within.
func SearchWithin(b chess.Board, budgetMs int) chess.Board {
	return search.SearchWithin[chess.Board](chessGame{}, b, budgetMs)
}
