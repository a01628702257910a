package book

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/C2H6Ethan/DistributedChess/internal/board"
)

func TestBuiltinProbeStartingPosition(t *testing.T) {
	b := Builtin()
	pos := board.NewPosition()

	want := map[string]bool{"e2e4": true, "d2d4": true, "g1f3": true, "c2c4": true}

	for i := 0; i < 50; i++ {
		m, ok := b.Probe(pos)
		if !ok {
			t.Fatal("builtin book misses the starting position")
		}
		if !want[m.String()] {
			t.Fatalf("book returned %s, not a known opening move", m)
		}
	}
}

func TestProbeIgnoresClocks(t *testing.T) {
	b := Builtin()

	// Same placement as the start but with nonzero clocks: still a hit.
	pos, err := board.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 10")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Probe(pos); !ok {
		t.Error("book key must exclude the clock fields")
	}
}

func TestProbeMissesUnknownPosition(t *testing.T) {
	b := Builtin()
	pos, err := board.ParseFEN("8/8/4k3/8/8/3K4/4R3/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if m, ok := b.Probe(pos); ok {
		t.Errorf("unexpected book hit %v in an endgame", m)
	}
}

func TestProbeNilAndEmpty(t *testing.T) {
	var nilBook *Book
	pos := board.NewPosition()
	if _, ok := nilBook.Probe(pos); ok {
		t.Error("nil book must miss")
	}
	if _, ok := New().Probe(pos); ok {
		t.Error("empty book must miss")
	}
}

func TestBuiltinMovesAreLegal(t *testing.T) {
	b := Builtin()
	for key, moves := range b.entries {
		pos, err := board.ParseFEN(key + " 0 1")
		if err != nil {
			t.Errorf("book key %q does not parse: %v", key, err)
			continue
		}
		for _, s := range moves {
			if pos.ParseCoordinateMove(s) == board.NoMove {
				t.Errorf("book move %q illegal in %q", s, key)
			}
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	key := "rnbqkbnr/pppppppp/8/8/8/7P/PPPPPPP1/RNBQKBNR b KQkq -"
	moves := []string{"e7e5", "d7d5"}

	if err := store.Put(key, moves); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("stored entry missing")
	}
	if diff := cmp.Diff(moves, got); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}

	if _, ok, err := store.Get("no such key"); err != nil || ok {
		t.Errorf("absent key: ok=%v err=%v", ok, err)
	}

	if err := store.Put(key, nil); err == nil {
		t.Error("empty move list must be rejected")
	}
}

func TestStoreLoadIntoOverridesBuiltin(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	startKey := board.PositionKey(board.StartFEN)
	if err := store.Put(startKey, []string{"b1c3"}); err != nil {
		t.Fatal(err)
	}

	b := Builtin()
	if err := store.LoadInto(b); err != nil {
		t.Fatal(err)
	}

	pos := board.NewPosition()
	for i := 0; i < 10; i++ {
		m, ok := b.Probe(pos)
		if !ok {
			t.Fatal("book miss after load")
		}
		if m.String() != "b1c3" {
			t.Fatalf("store entry did not override builtin line, got %s", m)
		}
	}
}
