// Package connectfour implements Connect Four against the game.Game
// contract as a second, larger-branching-factor toy instance validating
// package search's genericity. It has no public API beyond Board and no
// cmd/ driver of its own.
package connectfour

import "github.com/silverrook/chessgo/game"

const (
	cols = 7
	rows = 6
)

// Mark is a cell's occupant.
type Mark int

const (
	Empty Mark = iota
	Red
	Yellow
)

// Board is a Connect Four position, stored column-major with heights so
// legality is an O(1) height check rather than a column scan. Values
// are copied, never mutated.
type Board struct {
	cells   [cols][rows]Mark
	heights [cols]int
	turn    Mark
}

var _ game.Game[Board] = Game{}

// NewBoard returns the empty starting position with Red to move.
func NewBoard() Board {
	return Board{turn: Red}
}

func opponent(m Mark) Mark {
	if m == Red {
		return Yellow
	}
	return Red
}

func (b Board) drop(col int, m Mark) Board {
	b.cells[col][b.heights[col]] = m
	b.heights[col]++
	b.turn = opponent(b.turn)
	return b
}

var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// winner returns the mark with four in a row, or Empty if none has one.
func (b Board) winner() Mark {
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			var m = b.cells[col][row]
			if m == Empty {
				continue
			}
			for _, d := range directions {
				var run = 1
				for step := 1; step < 4; step++ {
					var c, r = col + d[0]*step, row + d[1]*step
					if c < 0 || c >= cols || r < 0 || r >= rows || b.cells[c][r] != m {
						break
					}
					run++
				}
				if run >= 4 {
					return m
				}
			}
		}
	}
	return Empty
}

func (b Board) full() bool {
	for col := 0; col < cols; col++ {
		if b.heights[col] < rows {
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
	for col := 0; col < cols; col++ {
		if b.heights[col] < rows {
			successors = append(successors, b.drop(col, b.turn))
		}
	}
	return successors
}

// Evaluate scores b from the side-to-move's viewpoint by counting, for
// every open four-in-a-row window, how many of the mover's pieces it
// contains uncontested by the opponent, minus the symmetric count for
// the opponent.
func (Game) Evaluate(b Board) float64 {
	var score float64
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			for _, d := range directions {
				var endCol, endRow = col + d[0]*3, row + d[1]*3
				if endCol < 0 || endCol >= cols || endRow < 0 || endRow >= rows {
					continue
				}
				var mine, theirs int
				for step := 0; step < 4; step++ {
					switch b.cells[col+d[0]*step][row+d[1]*step] {
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
		}
	}
	return score
}

// IsWinner always returns false: as in Tic-Tac-Toe, the side to move can
// never itself be the one who just completed four in a row.
func (Game) IsWinner(b Board) bool {
	return false
}

// IsLoser reports whether the opponent's last drop completed four in a
// row, meaning the side now to move has lost.
func (Game) IsLoser(b Board) bool {
	return b.winner() == opponent(b.turn)
}

// IsTie reports whether the board is full with no winner.
func (Game) IsTie(b Board) bool {
	return b.winner() == Empty && b.full()
}

func (Game) PreFetchDeep(Board)    {}
func (Game) PreFetchShallow(Board) {}
