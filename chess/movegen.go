package chess

// Purpose parameterizes move generation so the same per-piece algorithms
// can serve three different callers (see the constants below).
type Purpose int

const (
	// Legality generates the moves a player may actually choose from.
	Legality Purpose = iota
	// Check generates the squares a side attacks, for king-safety testing.
	Check
	// Evaluation generates the mobility/attack move set scored by eval.
	Evaluation
)

// pseudoLegalMoves returns every pseudo-legal (from, to) pair for the side
// to move under the given purpose. "Pseudo-legal" because a move may still
// leave the mover's own king in check; that filter lives in apply.go.
func pseudoLegalMoves(b Board, purpose Purpose) []Move {
	var result []Move
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			var from = squareAt(file, rank)
			var p, ok = b.pieceAt(from)
			if !ok || p.Color != b.SideToMove {
				continue
			}
			result = appendPieceMoves(result, b, from, p.Kind, purpose)
		}
	}
	return result
}

func appendPieceMoves(moves []Move, b Board, from Square, kind PieceKind, purpose Purpose) []Move {
	switch kind {
	case Pawn:
		return appendPawnMoves(moves, b, from, purpose)
	case Knight:
		return appendKnightMoves(moves, b, from, purpose)
	case Bishop:
		return appendSliderMoves(moves, b, from, Diagonal[:], 7, purpose)
	case Rook:
		return appendSliderMoves(moves, b, from, Straight[:], 7, purpose)
	case Queen:
		return appendSliderMoves(moves, b, from, allDirections[:], 7, purpose)
	case King:
		moves = appendSliderMoves(moves, b, from, allDirections[:], 1, purpose)
		if purpose == Legality {
			moves = appendCastlingMoves(moves, b, from)
		}
		return moves
	default:
		return moves
	}
}

// slide walks from start in steps of direction, stopping off-board, on a
// blocker, or after max steps. The blocking square itself is included iff
// its occupant should be considered a legal/attacked/scored target under
// purpose: any piece for Evaluation, an opponent only for Legality/Check.
func slide(b Board, start Square, direction Direction, purpose Purpose, max int) []Square {
	var result []Square
	var cur = start
	for step := 0; step < max; step++ {
		cur = cur.add(direction)
		if !cur.OnBoard() {
			break
		}
		occupant, occupied := b.pieceAt(cur)
		if !occupied {
			result = append(result, cur)
			continue
		}
		if purpose == Evaluation || occupant.Color != b.SideToMove {
			result = append(result, cur)
		}
		break
	}
	return result
}

func appendSliderMoves(moves []Move, b Board, from Square, directions []Direction, max int, purpose Purpose) []Move {
	for _, dir := range directions {
		for _, to := range slide(b, from, dir, purpose, max) {
			moves = append(moves, Move{from, to})
		}
	}
	return moves
}

func appendKnightMoves(moves []Move, b Board, from Square, purpose Purpose) []Move {
	for _, offset := range knightOffsets {
		var to = Square(int(from) + offset)
		if !to.OnBoard() {
			continue
		}
		occupant, occupied := b.pieceAt(to)
		if purpose == Evaluation || !occupied || occupant.Color != b.SideToMove {
			moves = append(moves, Move{from, to})
		}
	}
	return moves
}

// appendPawnMoves implements the purpose-dependent capture rule directly:
// forward pushes never attack so Check excludes them; diagonal targets
// count as attacked for Check regardless of occupancy, and count for
// Evaluation regardless of occupancy too (a pawn "covers" that square
// whether or not anything currently sits on it); Legality keeps diagonal
// moves to real captures only, since en passant is not modelled here.
func appendPawnMoves(moves []Move, b Board, from Square, purpose Purpose) []Move {
	var side = b.SideToMove
	var forward, diagLeft, diagRight Direction
	var homeRank int
	if side == White {
		forward, diagLeft, diagRight, homeRank = North, NorthWest, NorthEast, 1
	} else {
		forward, diagLeft, diagRight, homeRank = South, SouthWest, SouthEast, 6
	}

	if purpose != Check {
		var one = from.add(forward)
		if one.OnBoard() {
			if _, occupied := b.pieceAt(one); !occupied {
				moves = append(moves, Move{from, one})
				if from.Rank() == homeRank {
					var two = one.add(forward)
					if two.OnBoard() {
						if _, occupied := b.pieceAt(two); !occupied {
							moves = append(moves, Move{from, two})
						}
					}
				}
			}
		}
	}

	for _, dir := range [2]Direction{diagLeft, diagRight} {
		var to = from.add(dir)
		if !to.OnBoard() {
			continue
		}
		switch purpose {
		case Legality:
			if occupant, occupied := b.pieceAt(to); occupied && occupant.Color != side {
				moves = append(moves, Move{from, to})
			}
		case Check, Evaluation:
			moves = append(moves, Move{from, to})
		}
	}
	return moves
}

// appendCastlingMoves generates the two-square king slides for whichever
// rights remain. Whether the king's path is attacked is checked at the
// move-application gate, not here.
func appendCastlingMoves(moves []Move, b Board, kingSquare Square) []Move {
	var side = b.SideToMove
	var homeRank = 0
	if side == Black {
		homeRank = 7
	}
	if kingSquare != squareAt(4, homeRank) {
		return moves
	}

	if b.Rights.Has(side, KingSide) {
		var f = kingSquare.add(East)
		var g = f.add(East)
		if empty(b, f) && empty(b, g) {
			moves = append(moves, Move{kingSquare, g})
		}
	}
	if b.Rights.Has(side, QueenSide) {
		var d = kingSquare.add(West)
		var c = d.add(West)
		var bSq = c.add(West)
		if empty(b, d) && empty(b, c) && empty(b, bSq) {
			moves = append(moves, Move{kingSquare, c})
		}
	}
	return moves
}

func empty(b Board, s Square) bool {
	_, occupied := b.pieceAt(s)
	return !occupied
}

// attackedBy reports whether sq is attacked by side, using the Check
// purpose on a board copy whose side to move is forced to the attacker.
func attackedBy(b Board, sq Square, side Color) bool {
	var attacker = b.withSideToMove(side)
	for _, m := range pseudoLegalMoves(attacker, Check) {
		if m.To == sq {
			return true
		}
	}
	return false
}
