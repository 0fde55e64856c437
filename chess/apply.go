package chess

// Move validates and applies (fromFile, fromRank) -> (toFile, toRank) for
// the side to move, returning the resulting board. Coordinates outside
// 0-7 panic with *IndexOutOfRange; any other failure returns an
// *InvalidMove and the zero Board. The receiver is never mutated, since
// boards are values.
func (b Board) Move(fromFile, fromRank, toFile, toRank int) (Board, error) {
	checkFileRank(fromFile, fromRank)
	checkFileRank(toFile, toRank)
	var m = Move{squareAt(fromFile, fromRank), squareAt(toFile, toRank)}
	return applyMove(b, m, true)
}

// LegalMoves returns every fully legal move for the side to move: the
// pseudo-legal set with any move that would leave the mover's own king in
// check filtered out.
func (b Board) LegalMoves() []Move {
	var pseudo = pseudoLegalMoves(b, Legality)
	var result = make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if _, err := applyMove(b, m, true); err == nil {
			result = append(result, m)
		}
	}
	return result
}

// applyMove runs the §4.2 validation gate and, on success, produces the
// successor board. strict additionally enforces that the mover does not
// leave their own king in check (and, for castling, that the king's path
// is not attacked); LegalMoves and Board.Move both always pass strict
// true, but the gate is written to take it as a parameter because it is
// the single place both callers share.
func applyMove(b Board, m Move, strict bool) (Board, error) {
	var mover, ok = b.pieceAt(m.From)
	if !ok {
		return Board{}, &InvalidMove{m.From, m.To, ReasonNoPieceAtSource}
	}
	if mover.Color != b.SideToMove {
		return Board{}, &InvalidMove{m.From, m.To, ReasonWrongSideToMove}
	}

	if !containsMove(pseudoLegalMoves(b, Legality), m) {
		return Board{}, &InvalidMove{m.From, m.To, ReasonUnreachable}
	}

	var castling = mover.Kind == King && abs(int(m.To)-int(m.From)) == 2
	if strict && castling {
		var step = West
		if m.To > m.From {
			step = East
		}
		var transit = m.From.add(step)
		var attacker = b.SideToMove.Opponent()
		if attackedBy(b, m.From, attacker) || attackedBy(b, transit, attacker) || attackedBy(b, m.To, attacker) {
			return Board{}, &InvalidMove{m.From, m.To, ReasonCastlePathAttacked}
		}
	}

	var next = applyValidatedMove(b, m, mover, castling)

	if strict {
		var kingSquare = next.kingSquare(mover.Color)
		if kingSquare != NoSquare && attackedBy(next, kingSquare, next.SideToMove) {
			return Board{}, &InvalidMove{m.From, m.To, ReasonLeavesKingInCheck}
		}
	}

	return next, nil
}

// applyValidatedMove performs the mechanical board update: it assumes m
// has already passed the §4.2 legality gate.
func applyValidatedMove(b Board, m Move, mover Piece, castling bool) Board {
	var next = b
	_, capture := b.pieceAt(m.To)

	next.clear(m.From)
	var placed = mover
	if mover.Kind == Pawn && m.To.Rank() == lastRankFor(mover.Color) {
		placed = Piece{b.PromotionPiece, mover.Color}
	}
	next.set(m.To, placed)

	if castling {
		relocateCastlingRook(&next, mover.Color, m.To)
	}

	next.Rights = updatedCastlingRights(next, b.Rights, mover)

	next.SideToMove = b.SideToMove.Opponent()
	next.Ply = b.Ply + 1
	if capture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = b.HalfmoveClock + 1
	}
	return next
}

func lastRankFor(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

func relocateCastlingRook(b *Board, side Color, kingTo Square) {
	var homeRank = 0
	if side == Black {
		homeRank = 7
	}
	if kingTo.File() == 6 { // kingside: h-file rook to f-file
		var rookFrom = squareAt(7, homeRank)
		var rookTo = squareAt(5, homeRank)
		b.clear(rookFrom)
		b.set(rookTo, Piece{Rook, side})
	} else { // queenside: a-file rook to d-file
		var rookFrom = squareAt(0, homeRank)
		var rookTo = squareAt(3, homeRank)
		b.clear(rookFrom)
		b.set(rookTo, Piece{Rook, side})
	}
}

// updatedCastlingRights recomputes rights from scratch on the post-move
// board: a right survives only if its rook is still on its home square,
// and a side's rights are cleared outright if its king just moved. This
// keeps the monotonically-non-increasing invariant without having to
// separately track "rook moved" vs "rook captured on its home square".
func updatedCastlingRights(next Board, rights CastlingRights, mover Piece) CastlingRights {
	if mover.Kind == King {
		rights = rights.withoutColor(mover.Color)
	}
	for _, cr := range [4]struct {
		right CastlingRights
		color Color
		side  CastleSide
	}{
		{WhiteKingSide, White, KingSide},
		{WhiteQueenSide, White, QueenSide},
		{BlackKingSide, Black, KingSide},
		{BlackQueenSide, Black, QueenSide},
	} {
		if rights&cr.right == 0 {
			continue
		}
		var homeRank = 0
		if cr.color == Black {
			homeRank = 7
		}
		var rookFile = 0
		if cr.side == KingSide {
			rookFile = 7
		}
		if p, ok := next.pieceAt(squareAt(rookFile, homeRank)); !ok || p.Kind != Rook || p.Color != cr.color {
			rights = rights.without(cr.color, cr.side)
		}
	}
	return rights
}

func containsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
