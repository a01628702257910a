// Package bench implements perft, the move-generation correctness oracle:
// it counts legal move sequences to a fixed depth.
package bench

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/C2H6Ethan/DistributedChess/internal/board"
)

// Perft returns the number of leaf nodes at the given depth.
func Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		nodes += Perft(pos, depth-1)
		pos.UnmakeMove(m, undo)
	}
	return nodes
}

// SplitEntry is the node count under one root move.
type SplitEntry struct {
	Move  board.Move
	Nodes uint64
}

// Divide returns the per-root-move node counts and their total.
func Divide(pos *board.Position, depth int) ([]SplitEntry, uint64) {
	moves := pos.GenerateLegalMoves()
	split := make([]SplitEntry, 0, moves.Len())

	var total uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		nodes := Perft(pos, depth-1)
		pos.UnmakeMove(m, undo)

		split = append(split, SplitEntry{Move: m, Nodes: nodes})
		total += nodes
	}
	return split, total
}

// Run runs perft on a FEN to the given depth and reports each depth's node
// count and rate through out.
func Run(fen string, depth int, out func(string)) error {
	printer := message.NewPrinter(language.English)

	for d := 1; d <= depth; d++ {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			return fmt.Errorf("perft: %w", err)
		}

		start := time.Now()
		nodes := Perft(pos, d)
		elapsed := time.Since(start)

		rate := 0
		if sec := elapsed.Seconds(); sec > 0 {
			rate = int(float64(nodes) / sec)
		}
		out(printer.Sprintf("d=%d nodes=%d rate=%dn/s (%.3fs elapsed)",
			d, nodes, rate, elapsed.Seconds()))
	}
	return nil
}
