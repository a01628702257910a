package board

import "testing"

func TestParseCoordinateMove(t *testing.T) {
	tests := []struct {
		fen   string
		move  string
		legal bool
		flag  MoveFlag
	}{
		{StartFEN, "e2e4", true, FlagDoublePush},
		{StartFEN, "e2e3", true, FlagQuiet},
		{StartFEN, "g1f3", true, FlagQuiet},
		{StartFEN, "e2e5", false, 0},
		{StartFEN, "e7e5", false, 0}, // black piece, white to move
		{StartFEN, "d1h5", false, 0}, // blocked queen
		{StartFEN, "e2", false, 0},
		{StartFEN, "xyzw", false, 0},
		{StartFEN, "e2e4x", false, 0},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", true, FlagKingCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", true, FlagQueenCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1", "e1c1", false, 0}, // no queenside right
		{"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e5d6", true, FlagEnPassant},
		{"8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8q", true, FlagPromoQueen},
		{"8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8n", true, FlagPromoKnight},
		{"8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8", false, 0}, // promotion letter required
	}

	for _, tc := range tests {
		pos, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
		}

		m := pos.ParseCoordinateMove(tc.move)
		if tc.legal {
			if m == NoMove {
				t.Errorf("ParseCoordinateMove(%q) in %q = NoMove, want legal move", tc.move, tc.fen)
				continue
			}
			if m.Flag() != tc.flag {
				t.Errorf("ParseCoordinateMove(%q) flag = %04b, want %04b", tc.move, m.Flag(), tc.flag)
			}
			if m.String() != tc.move {
				t.Errorf("move round trip: got %q, want %q", m.String(), tc.move)
			}
		} else if m != NoMove {
			t.Errorf("ParseCoordinateMove(%q) in %q = %v, want NoMove", tc.move, tc.fen, m)
		}
	}
}

func TestCastlingBlockedThroughCheck(t *testing.T) {
	// Black rook on e-file: the king is in check, castling must not be generated.
	pos, err := ParseFEN("4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, mv := range pos.GenerateLegalMoves().Slice() {
		if mv.IsCastle() {
			t.Errorf("castle %v generated while in check", mv)
		}
	}

	// Rook on f-file attacks the pass-through square of O-O; O-O-O stays legal.
	pos, err = ParseFEN("5rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	sawQueenside := false
	for _, mv := range pos.GenerateLegalMoves().Slice() {
		if mv.Flag() == FlagKingCastle {
			t.Errorf("kingside castle generated through an attacked square")
		}
		if mv.Flag() == FlagQueenCastle {
			sawQueenside = true
		}
	}
	if !sawQueenside {
		t.Error("queenside castle missing")
	}
}

func TestGenerateLegalCaptures(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	captures := pos.GenerateLegalCaptures()
	if captures.Len() == 0 {
		t.Fatal("expected captures in Kiwipete")
	}

	all := pos.GenerateLegalMoves()
	wantCount := 0
	for i := 0; i < all.Len(); i++ {
		if all.Get(i).IsCapture() {
			wantCount++
		}
	}
	if captures.Len() != wantCount {
		t.Errorf("capture generator found %d moves, full generator has %d captures",
			captures.Len(), wantCount)
	}

	for i := 0; i < captures.Len(); i++ {
		if !captures.Get(i).IsCapture() {
			t.Errorf("non-capture %v in capture list", captures.Get(i))
		}
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	// Back-rank mate: black to move, already mated.
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !pos.IsCheckmate() {
		t.Error("expected checkmate")
	}
	if pos.IsStalemate() {
		t.Error("checkmate misreported as stalemate")
	}

	// King can capture the rook: not mate.
	pos, err = ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if pos.IsCheckmate() {
		t.Error("expected no checkmate when the rook hangs")
	}

	// Corner stalemate: the queen on c7 boxes in the king on a8 without
	// checking it.
	pos, err = ParseFEN("k7/2Q5/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !pos.IsStalemate() {
		t.Error("expected stalemate")
	}
	if pos.IsCheckmate() {
		t.Error("stalemate misreported as checkmate")
	}
}
