package chess

import "testing"

func applySequence(t *testing.T, moves [][4]int) Board {
	t.Helper()
	var b = StartingBoard()
	for i, mv := range moves {
		var next, err = b.Move(mv[0], mv[1], mv[2], mv[3])
		if err != nil {
			t.Fatalf("move %d (%v) raised: %v", i, mv, err)
		}
		b = next
	}
	return b
}

func TestFoolsMateCheckmate(t *testing.T) {
	var b = applySequence(t, [][4]int{
		{4, 1, 4, 3},
		{4, 6, 4, 4},
		{5, 0, 2, 3},
		{5, 7, 2, 4},
		{3, 0, 5, 2},
		{0, 6, 0, 5},
		{5, 2, 5, 6},
	})
	if !b.InCheckmate() {
		t.Fatal("expected checkmate after fool's mate sequence")
	}
	if b.SideToMove != Black {
		t.Fatalf("expected Black to be the mated side, SideToMove = %v", b.SideToMove)
	}
}

func TestCheckWithoutMate(t *testing.T) {
	var b = applySequence(t, [][4]int{
		{1, 0, 0, 2},
		{0, 6, 0, 5},
		{0, 2, 1, 4},
		{1, 6, 1, 5},
		{1, 4, 2, 6},
	})
	if !b.InCheck() {
		t.Fatal("expected check")
	}
	if b.InCheckmate() {
		t.Fatal("expected no checkmate")
	}
}

func TestEmptyBoardIsStalemateAndDraw(t *testing.T) {
	var b Board
	if !b.IsDraw() {
		t.Error("empty board should be a draw")
	}
	if !b.GameOver() {
		t.Error("empty board should be game over")
	}
}

func TestCheckmateImpliesCheckAndExcludesStalemate(t *testing.T) {
	var b = applySequence(t, [][4]int{
		{4, 1, 4, 3},
		{4, 6, 4, 4},
		{5, 0, 2, 3},
		{5, 7, 2, 4},
		{3, 0, 5, 2},
		{0, 6, 0, 5},
		{5, 2, 5, 6},
	})
	if !b.InCheckmate() {
		t.Fatal("expected checkmate")
	}
	if !b.InCheck() {
		t.Error("InCheckmate must imply InCheck")
	}
	if b.InStalemate() {
		t.Error("InCheckmate and InStalemate must be mutually exclusive")
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	var b = StartingBoard()
	b.HalfmoveClock = 50
	if !b.IsDraw() {
		t.Error("expected fifty-move draw")
	}
	if !b.GameOver() {
		t.Error("expected game over")
	}
}
