package chess

// fiftyMoveLimit is the half-move-since-capture threshold the spec counts
// the fifty-move rule at; it is approximated (as the spec's glossary
// notes) as 50 half-moves rather than 50 full moves by each side.
const fiftyMoveLimit = 49

// InCheck reports whether the side to move's king is attacked.
func (b Board) InCheck() bool {
	var kingSquare = b.kingSquare(b.SideToMove)
	if kingSquare == NoSquare {
		return false
	}
	return attackedBy(b, kingSquare, b.SideToMove.Opponent())
}

// InCheckmate reports whether the side to move is in check with no legal
// reply.
func (b Board) InCheckmate() bool {
	return b.InCheck() && len(b.LegalMoves()) == 0
}

// InStalemate reports whether the side to move has no legal move while
// not in check. As an optimization, if there are at least 12 pseudo-legal
// moves and the side is not in check, this returns false without
// enumerating legality: in every reachable chess position, 12 or more
// pseudo-legal moves with no check guarantees at least one of them is
// legal. This is a heuristic asserted, not locally re-proven, by this
// port (see DESIGN.md).
func (b Board) InStalemate() bool {
	if b.InCheck() {
		return false
	}
	var pseudo = pseudoLegalMoves(b, Legality)
	if len(pseudo) >= 12 {
		return false
	}
	for _, m := range pseudo {
		if _, err := applyMove(b, m, true); err == nil {
			return false
		}
	}
	return true
}

// fiftyMoveDraw reports whether the fifty-move rule has been reached.
func (b Board) fiftyMoveDraw() bool {
	return b.HalfmoveClock > fiftyMoveLimit
}

// IsDraw reports whether the game is drawn by stalemate or the
// fifty-move rule.
func (b Board) IsDraw() bool {
	return b.fiftyMoveDraw() || b.InStalemate()
}

// GameOver reports whether the game has reached a terminal state:
// checkmate, stalemate, or the fifty-move rule.
func (b Board) GameOver() bool {
	return b.InCheckmate() || b.IsDraw()
}
