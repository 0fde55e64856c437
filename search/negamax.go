// Package search implements a generic negamax/alpha-beta core (see
// negamax.go) and an iterative-deepening driver with cooperative
// cancellation (see driver.go), driven entirely through the game.Game
// contract so chess, Tic-Tac-Toe, and Connect Four share one
// implementation.
package search

import (
	"sort"

	"github.com/silverrook/chessgo/game"
)

const (
	valueInfinity = 1 << 30
	valueWin      = valueInfinity
	valueLoss     = -valueInfinity
	valueDraw     = 0
)

// Negamax returns the best score attainable from s and the successor
// state that attains it, searching depth plies with alpha-beta pruning.
// hint, if non-nil and present among s's successors, is searched first;
// ct is polled at the start of every recursive call and, once cancelled,
// short-circuits the remaining tree with cancelledScore.
func Negamax[S comparable](g game.Game[S], s S, depth int, alpha, beta float64, hint *S, ct *CancellationToken) (float64, S) {
	if ct.Cancelled() {
		return cancelledScore, s
	}

	if depth == 0 {
		return g.Evaluate(s), s
	}

	var successors = g.Successors(s)
	if len(successors) == 0 {
		switch {
		case g.IsLoser(s):
			return valueLoss, s
		case g.IsWinner(s):
			return valueWin, s
		case g.IsTie(s):
			return valueDraw, s
		default:
			// Successors is empty but none of IsLoser/IsWinner/IsTie fired:
			// treat as a draw rather than panic, but this shouldn't arise
			// for a Game implementation whose terminal predicates are
			// exhaustive over "no successors".
			return valueDraw, s
		}
	}

	orderSuccessors(g, successors, hint)

	var best = successors[0]
	for _, child := range successors {
		g.PreFetchDeep(child)
		var v, _ = Negamax(g, child, depth-1, -beta, -alpha, nil, ct)
		v = -v
		if ct.Cancelled() {
			return cancelledScore, s
		}
		if v >= beta {
			return v, child
		}
		if v > alpha {
			alpha = v
			best = child
		}
	}
	return alpha, best
}

// orderSuccessors places hint first when present among successors, then
// sorts the rest descending by static evaluation: ordering is critical
// for alpha-beta's effectiveness even though it cannot change
// correctness.
func orderSuccessors[S comparable](g game.Game[S], successors []S, hint *S) {
	for _, s := range successors {
		g.PreFetchShallow(s)
	}

	sort.SliceStable(successors, func(i, j int) bool {
		var iIsHint = hint != nil && successors[i] == *hint
		var jIsHint = hint != nil && successors[j] == *hint
		if iIsHint != jIsHint {
			return iIsHint
		}
		return g.Evaluate(successors[i]) > g.Evaluate(successors[j])
	})
}
