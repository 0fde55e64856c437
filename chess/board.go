package chess

// Board is an immutable snapshot of a chess position. Values are copied,
// never mutated; a successor board is produced by Move and holds no
// reference to its predecessor.
type Board struct {
	cells          [128]Piece
	SideToMove     Color
	Rights         CastlingRights
	Ply            int
	HalfmoveClock  int
	PromotionPiece PieceKind
}

// Move is a (from, to) pair of on-board squares. Promotion is not encoded
// on the move: the board's pending PromotionPiece decides what a pawn
// reaching its last rank becomes (see Board.WithPromotionPiece).
type Move struct {
	From, To Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// StartingBoard returns the standard chess starting position.
func StartingBoard() Board {
	var b Board
	b.PromotionPiece = Queen
	b.Rights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide

	var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b.set(squareAt(file, 0), Piece{backRank[file], White})
		b.set(squareAt(file, 1), Piece{Pawn, White})
		b.set(squareAt(file, 6), Piece{Pawn, Black})
		b.set(squareAt(file, 7), Piece{backRank[file], Black})
	}
	return b
}

func (b *Board) set(s Square, p Piece) {
	b.cells[s] = p
}

func (b *Board) clear(s Square) {
	b.cells[s] = Piece{}
}

// pieceAt is the Square-indexed accessor used internally; it is always
// safe, including on off-board sentinel cells, which read as empty.
func (b Board) pieceAt(s Square) (Piece, bool) {
	var p = b.cells[s&0x7F]
	if !s.OnBoard() {
		return Piece{}, false
	}
	return p, p.Kind != NoPieceKind
}

// PieceAt returns the piece at (file, rank), following the §6 coordinate
// convention: file 0-7 is a-h, rank 0-7 is 1-8.
func (b Board) PieceAt(file, rank int) (Piece, bool) {
	checkFileRank(file, rank)
	return b.pieceAt(squareAt(file, rank))
}

// WithPromotionPiece sets the kind the next pawn to reach its last rank
// will become. It does not itself apply to any move already made.
func (b Board) WithPromotionPiece(kind PieceKind) Board {
	b.PromotionPiece = kind
	return b
}

func (b Board) kingSquare(c Color) Square {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			var s = squareAt(file, rank)
			if p, ok := b.pieceAt(s); ok && p.Kind == King && p.Color == c {
				return s
			}
		}
	}
	return NoSquare
}

// withSideToMove returns a copy of b with the side to move forced to c,
// keeping the same occupancy. It backs the Check-purpose "as if this side
// were attacking" queries used by inCheck and the castling-path check.
func (b Board) withSideToMove(c Color) Board {
	b.SideToMove = c
	return b
}
