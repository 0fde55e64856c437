// Package engine binds the chess package to the generic game-search
// framework in package search, and exposes the fixed-depth and
// budgeted search entry points chess consumers call.
package engine

import (
	"github.com/silverrook/chessgo/chess"
	"github.com/silverrook/chessgo/game"
)

// chessGame implements game.Game[chess.Board]. It carries no state of its
// own: every method is a thin translation of an existing chess.Board
// query, so the search core never has to know chess's rules.
type chessGame struct{}

var _ game.Game[chess.Board] = chessGame{}

func (chessGame) Successors(b chess.Board) []chess.Board {
	var moves = b.LegalMoves()
	var successors = make([]chess.Board, 0, len(moves))
	for _, m := range moves {
		var next, err = b.Move(m.From.File(), m.From.Rank(), m.To.File(), m.To.Rank())
		if err != nil {
			// LegalMoves only returns moves that Move already accepted;
			// a rejection here would mean the two disagree.
			continue
		}
		successors = append(successors, next)
	}
	return successors
}

func (chessGame) Evaluate(b chess.Board) float64 {
	return b.Evaluate()
}

func (chessGame) IsWinner(b chess.Board) bool {
	return false // Successors is empty only when the mover has no reply; see IsLoser/IsTie.
}

func (chessGame) IsLoser(b chess.Board) bool {
	return b.InCheckmate()
}

func (chessGame) IsTie(b chess.Board) bool {
	return b.IsDraw()
}

func (chessGame) PreFetchDeep(chess.Board)    {}
func (chessGame) PreFetchShallow(chess.Board) {}
