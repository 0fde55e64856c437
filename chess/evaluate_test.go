package chess

import "testing"

func TestEvaluateFiftyMoveDrawIsZero(t *testing.T) {
	var b = StartingBoard()
	b.HalfmoveClock = 50
	if got := b.Evaluate(); got != 0 {
		t.Errorf("Evaluate() = %v, want 0 on a fifty-move draw", got)
	}
}

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	var b = StartingBoard()
	var white = b.Evaluate()
	var black = b.withSideToMove(Black).Evaluate()
	if white != black {
		t.Errorf("starting position should score identically for either side to move: white=%v black=%v", white, black)
	}
}

func TestEvaluateRewardsMaterialAdvantage(t *testing.T) {
	var b = StartingBoard()
	var withoutBlackQueen = b
	withoutBlackQueen.clear(squareAt(3, 7))
	if withoutBlackQueen.Evaluate() <= b.Evaluate() {
		t.Error("removing the opponent's queen should raise the score")
	}
}
