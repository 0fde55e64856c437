// Command chessgo is a line-oriented REPL driving a chess.Board through
// the engine package. It is not a UCI or XBoard engine (no protocol
// framing, no position/go/isready handshake) — just a thin external
// collaborator exercising the library packages (spec.md §1).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/silverrook/chessgo/chess"
	"github.com/silverrook/chessgo/engine"
)

func main() {
	var depth = flag.Int("depth", 4, "ply depth used by the search command")
	var budgetMs = flag.Int("budget-ms", 1000, "default millisecond budget used by the within command")
	var promote = flag.String("promote", "q", "pawn promotion choice: q, r, b, or n")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags)

	var promotionKind, err = parsePromotionKind(*promote)
	if err != nil {
		logger.Fatalf("invalid -promote: %v", err)
	}

	var board = chess.StartingBoard().WithPromotionPiece(promotionKind)
	var repl = &repl{
		board:    board,
		depth:    *depth,
		budgetMs: *budgetMs,
		logger:   logger,
		out:      os.Stdout,
	}
	repl.run(os.Stdin)
}

type repl struct {
	board    chess.Board
	depth    int
	budgetMs int
	logger   *log.Logger
	out      *os.File
}

func (r *repl) run(in *os.File) {
	fmt.Fprintln(r.out, r.board.String())
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var line = scanner.Text()
		if strings.TrimSpace(line) == "quit" {
			return
		}
		if err := r.handle(line); err != nil {
			r.logger.Println(err)
		}
	}
}

func (r *repl) handle(line string) error {
	var fields = strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "move":
		return r.handleMove(fields[1:])
	case "search":
		return r.handleSearch(fields[1:])
	case "within":
		return r.handleWithin(fields[1:])
	case "show":
		fmt.Fprintln(r.out, r.board.String())
		return nil
	default:
		return fmt.Errorf("unrecognized command %q", fields[0])
	}
}

func (r *repl) handleMove(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: move <from> <to>, e.g. move e2 e4")
	}
	var fromFile, fromRank, err = parseSquare(args[0])
	if err != nil {
		return err
	}
	var toFile, toRank int
	toFile, toRank, err = parseSquare(args[1])
	if err != nil {
		return err
	}
	var next chess.Board
	next, err = r.board.Move(fromFile, fromRank, toFile, toRank)
	if err != nil {
		return err
	}
	r.board = next
	fmt.Fprintln(r.out, r.board.String())
	if r.board.GameOver() {
		fmt.Fprintln(r.out, gameOverMessage(r.board))
	}
	return nil
}

func (r *repl) handleSearch(args []string) error {
	var depth = r.depth
	if len(args) == 1 {
		var n, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("usage: search <depth>")
		}
		depth = n
	}
	r.board = engine.SearchBest(r.board, depth)
	fmt.Fprintln(r.out, r.board.String())
	if r.board.GameOver() {
		fmt.Fprintln(r.out, gameOverMessage(r.board))
	}
	return nil
}

func (r *repl) handleWithin(args []string) error {
	var budgetMs = r.budgetMs
	if len(args) == 1 {
		var n, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("usage: within <budget-ms>")
		}
		budgetMs = n
	}
	r.board = engine.SearchWithin(r.board, budgetMs)
	fmt.Fprintln(r.out, r.board.String())
	if r.board.GameOver() {
		fmt.Fprintln(r.out, gameOverMessage(r.board))
	}
	return nil
}

func gameOverMessage(b chess.Board) string {
	switch {
	case b.InCheckmate():
		return fmt.Sprintf("checkmate, %s to move loses", b.SideToMove)
	case b.InStalemate():
		return "stalemate"
	default:
		return "draw"
	}
}

// parseSquare parses algebraic coordinates like "e2" into 0-based
// (file, rank) following the §6 convention: file 0-7 is a-h, rank 0-7
// is 1-8.
func parseSquare(s string) (file, rank int, err error) {
	if len(s) != 2 {
		return 0, 0, fmt.Errorf("invalid square %q", s)
	}
	file = int(s[0] - 'a')
	rank = int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, 0, fmt.Errorf("invalid square %q", s)
	}
	return file, rank, nil
}

func parsePromotionKind(s string) (chess.PieceKind, error) {
	switch strings.ToLower(s) {
	case "q":
		return chess.Queen, nil
	case "r":
		return chess.Rook, nil
	case "b":
		return chess.Bishop, nil
	case "n":
		return chess.Knight, nil
	default:
		return chess.NoPieceKind, fmt.Errorf("unknown promotion piece %q", s)
	}
}
