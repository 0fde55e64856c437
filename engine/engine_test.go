package engine

import (
	"testing"

	"github.com/silverrook/chessgo/chess"
)

func isAmongLegalSuccessors(t *testing.T, b chess.Board, got chess.Board) {
	t.Helper()
	for _, m := range b.LegalMoves() {
		var next, err = b.Move(m.From.File(), m.From.Rank(), m.To.File(), m.To.Rank())
		if err != nil {
			continue
		}
		if next == got {
			return
		}
	}
	t.Errorf("result is not among the starting position's legal successors")
}

func TestSearchBestReturnsALegalSuccessor(t *testing.T) {
	var start = chess.StartingBoard()
	var got = SearchBest(start, 2)
	isAmongLegalSuccessors(t, start, got)
}

func TestSearchWithinReturnsALegalSuccessor(t *testing.T) {
	var start = chess.StartingBoard()
	var got = SearchWithin(start, 500)
	isAmongLegalSuccessors(t, start, got)
}

func TestSearchWithinZeroBudgetMatchesDepthOne(t *testing.T) {
	var start = chess.StartingBoard()
	var want = SearchBest(start, 1)
	var got = SearchWithin(start, 0)
	if got != want {
		t.Errorf("SearchWithin(budget=0) did not match SearchBest(depth=1)")
	}
}

func TestSearchBestReturnsALegalSuccessorInFoolsMatePosition(t *testing.T) {
	// After 1.f3 e5 2.g4, Black to move has the mating reply Qh4; here we
	// just check depth-1 search picks a legal, non-panicking move from this
	// near-terminal position to exercise the full adapter end to end.
	var b = chess.StartingBoard()
	var err error
	b, err = b.Move(5, 1, 5, 2) // f3
	if err != nil {
		t.Fatalf("f3: %v", err)
	}
	b, err = b.Move(4, 6, 4, 4) // e5
	if err != nil {
		t.Fatalf("e5: %v", err)
	}
	b, err = b.Move(6, 1, 6, 3) // g4
	if err != nil {
		t.Fatalf("g4: %v", err)
	}

	var got = SearchBest(b, 1)
	isAmongLegalSuccessors(t, b, got)
}
