// Package game defines the generic game-search contract that the search
// package drives. Chess is its principal instance; Tic-Tac-Toe and
// Connect Four (internal/ttt, internal/connectfour) exist only to prove
// the contract is not chess-specific.
package game

// Game is the contract a state type S must satisfy to be searched by
// package search's negamax/alpha-beta core and iterative-deepening
// driver.
type Game[S any] interface {
	// Successors returns every state reachable from s in one ply for the
	// side to move.
	Successors(s S) []S

	// Evaluate returns a heuristic score for s from the side-to-move's
	// viewpoint; larger is better.
	Evaluate(s S) float64

	// IsWinner reports whether the side to move in s has already won.
	IsWinner(s S) bool
	// IsLoser reports whether the side to move in s has already lost.
	IsLoser(s S) bool
	// IsTie reports whether s is a drawn terminal state.
	IsTie(s S) bool

	// PreFetchDeep and PreFetchShallow are cache-warming hooks. In a
	// single-threaded search they are no-ops; a parallel search can use
	// them to prime successor lists or scores before scoring children
	// (see spec §9's discussion of preFetchDeep/preFetchShallow).
	PreFetchDeep(s S)
	PreFetchShallow(s S)
}
