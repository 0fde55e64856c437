// Package ttt implements Tic-Tac-Toe against the game.Game contract
// purely to validate, with a second instance unrelated to chess, that
// package search's negamax/alpha-beta core and iterative-deepening
// driver are not chess-specific. It has no public API beyond Board and
// no cmd/ driver of its own.
package ttt

import "github.com/silverrook/chessgo/game"

// Mark is a cell's occupant.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

// Board is a 3x3 Tic-Tac-Toe position. Values are copied, never mutated.
type Board struct {
	cells [9]Mark
	turn  Mark
}

var _ game.Game[Board] = Game{}

// NewBoard returns the empty starting position with X to move.
func NewBoard() Board {
	return Board{turn: X}
}

func (b Board) at(row, col int) Mark {
	return b.cells[row*3+col]
}

func (b Board) with(row, col int, m Mark) Board {
	b.cells[row*3+col] = m
	b.turn = opponent(b.turn)
	return b
}

func opponent(m Mark) Mark {
	if m == X {
		return O
	}
	return X
}

var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// winner returns the mark that has completed a line, or Empty if none has.
func (b Board) winner() Mark {
	for _, line := range lines {
		var a = b.at(line[0][0], line[0][1])
		if a == Empty {
			continue
		}
		if a == b.at(line[1][0], line[1][1]) && a == b.at(line[2][0], line[2][1]) {
			return a
		}
	}
	return Empty
}

func (b Board) full() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// Game implements game.Game[Board].
type Game struct{}

func (Game) Successors(b Board) []Board {
	if b.winner() != Empty {
		return nil
	}
	var successors []Board
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if b.at(row, col) == Empty {
				successors = append(successors, b.with(row, col, b.turn))
			}
		}
	}
	return successors
}

// Evaluate scores b from the side-to-move's viewpoint: a material-free
// heuristic counting near-complete lines, since Tic-Tac-Toe's search
// tree is small enough that exact terminal values dominate anyway.
func (Game) Evaluate(b Board) float64 {
	var score float64
	for _, line := range lines {
		var mine, theirs int
		for _, cell := range line {
			switch b.at(cell[0], cell[1]) {
			case b.turn:
				mine++
			case opponent(b.turn):
				theirs++
			}
		}
		if theirs == 0 {
			score += float64(mine)
		}
		if mine == 0 {
			score -= float64(theirs)
		}
	}
	return score
}

// IsWinner reports whether the side to move already completed a line.
// This cannot happen in legal play (a player never moves into a state
// where it is their turn and they have already won), so it always
// returns false; kept for symmetry with IsLoser and to satisfy the
// contract explicitly rather than by omission.
func (Game) IsWinner(b Board) bool {
	return false
}

// IsLoser reports whether the opponent completed a line on the move
// that produced b, meaning the side now to move has lost.
func (Game) IsLoser(b Board) bool {
	return b.winner() == opponent(b.turn)
}

// IsTie reports whether the board is full with no winner.
func (Game) IsTie(b Board) bool {
	return b.winner() == Empty && b.full()
}

func (Game) PreFetchDeep(Board)    {}
func (Game) PreFetchShallow(Board) {}
