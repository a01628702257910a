package bench

import (
	"strings"
	"testing"

	"github.com/C2H6Ethan/DistributedChess/internal/board"
)

func TestPerftKnownCounts(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		nodes uint64
	}{
		{board.StartFEN, 1, 20},
		{board.StartFEN, 2, 400},
		{board.StartFEN, 3, 8902},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
	}

	for _, tc := range tests {
		pos, err := board.ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
		}
		if got := Perft(pos, tc.depth); got != tc.nodes {
			t.Errorf("Perft(%q, %d) = %d, want %d", tc.fen, tc.depth, got, tc.nodes)
		}
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := board.NewPosition()
	split, total := Divide(pos, 3)

	if len(split) != 20 {
		t.Errorf("root move count = %d, want 20", len(split))
	}

	var sum uint64
	for _, e := range split {
		sum += e.Nodes
	}
	if sum != total || total != 8902 {
		t.Errorf("divide total = %d (sum %d), want 8902", total, sum)
	}
}

func TestRunReportsEachDepth(t *testing.T) {
	var lines []string
	err := Run(board.StartFEN, 2, func(s string) { lines = append(lines, s) })
	if err != nil {
		t.Fatal(err)
	}

	if len(lines) != 2 {
		t.Fatalf("got %d report lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "nodes=20") {
		t.Errorf("depth 1 line %q missing node count", lines[0])
	}
	if !strings.Contains(lines[1], "nodes=400") {
		t.Errorf("depth 2 line %q missing node count", lines[1])
	}

	if err := Run("bogus", 1, func(string) {}); err == nil {
		t.Error("Run accepted a malformed FEN")
	}
}
