// Package book provides the opening book: a map from position keys (the
// first four FEN fields, without clocks) to coordinate-move lists.
package book

import (
	"math/rand"

	"github.com/C2H6Ethan/DistributedChess/internal/board"
)

// Book maps position keys to non-empty lists of coordinate moves.
type Book struct {
	entries map[string][]string
}

// New creates an empty book.
func New() *Book {
	return &Book{entries: make(map[string][]string)}
}

// Builtin returns the compiled-in opening repertoire.
func Builtin() *Book {
	b := New()
	for key, moves := range builtinLines {
		b.entries[key] = moves
	}
	return b
}

// Add registers moves for a position key, replacing any existing entry.
// Empty move lists are ignored.
func (b *Book) Add(key string, moves []string) {
	if len(moves) == 0 {
		return
	}
	b.entries[key] = moves
}

// Size returns the number of positions in the book.
func (b *Book) Size() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Probe looks up the position and returns a uniformly random book move,
// verified legal. Unknown positions and entries whose moves are all
// illegal miss silently.
func (b *Book) Probe(pos *board.Position) (board.Move, bool) {
	if b == nil {
		return board.NoMove, false
	}

	key := board.PositionKey(pos.ToFEN())
	moves, ok := b.entries[key]
	if !ok || len(moves) == 0 {
		return board.NoMove, false
	}

	var legal []board.Move
	for _, s := range moves {
		if m := pos.ParseCoordinateMove(s); m != board.NoMove {
			legal = append(legal, m)
		}
	}
	if len(legal) == 0 {
		return board.NoMove, false
	}
	return legal[rand.Intn(len(legal))], true
}

// builtinLines is the static opening repertoire, keyed by the four-field
// position key. Every entry lists sound mainline continuations; the probe
// picks among them at random for variety.
var builtinLines = map[string][]string{
	// Starting position (white moves)
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -": {"e2e4", "d2d4", "g1f3", "c2c4"},

	// After 1.e4 (black moves)
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq -": {"e7e5", "c7c5", "e7e6", "d7d5", "g8f6", "d7d6"},

	// After 1.d4 (black moves)
	"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq -": {"d7d5", "g8f6", "e7e6", "g7g6"},

	// After 1.Nf3 (black moves)
	"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq -": {"d7d5", "g8f6", "c7c5"},

	// After 1.c4 (black moves)
	"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq -": {"e7e5", "g8f6", "c7c5"},

	// After 1.e4 e5 (white moves)
	"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq -": {"g1f3", "f1c4", "b1c3"},

	// After 1.e4 e5 2.Nf3 (black moves) — Nc6, Nf6 (Petrov), d6 (Philidor)
	"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq -": {"b8c6", "g8f6", "d7d6"},

	// After 1.e4 e5 2.Nf3 Nc6 (white moves) — Ruy Lopez, Italian, Scotch
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq -": {"f1b5", "f1c4", "d2d4"},

	// Italian: 1.e4 e5 2.Nf3 Nc6 3.Bc4 (black moves) — Bc5, Nf6 (Two Knights)
	"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq -": {"f8c5", "g8f6"},

	// Ruy Lopez: 1.e4 e5 2.Nf3 Nc6 3.Bb5 (black moves) — a6 (Morphy), Nf6 (Berlin), d6
	"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq -": {"a7a6", "g8f6", "d7d6"},

	// After 1.e4 c5 — Sicilian (white moves)
	"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq -": {"g1f3", "b1c3", "c2c3"},

	// Sicilian Open: 1.e4 c5 2.Nf3 (black moves) — d6 (Najdorf/Dragon), Nc6, e6
	"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq -": {"d7d6", "b8c6", "e7e6"},

	// Sicilian: 1.e4 c5 2.Nf3 d6 (white moves)
	"rnbqkbnr/pp2pppp/3p4/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq -": {"d2d4"},

	// Sicilian: 1.e4 c5 2.Nf3 Nc6 (white moves) — d4, Bb5 (Rossolimo)
	"r1bqkbnr/pp1ppppp/2n5/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq -": {"d2d4", "f1b5"},

	// Sicilian: 1.e4 c5 2.Nf3 e6 (white moves)
	"rnbqkbnr/pp1p1ppp/4p3/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq -": {"d2d4"},

	// After 1.e4 e6 — French (white moves)
	"rnbqkbnr/pppp1ppp/4p3/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq -": {"d2d4", "g1f3"},

	// French: 1.e4 e6 2.d4 (black moves)
	"rnbqkbnr/pppp1ppp/4p3/8/3PP3/8/PPP2PPP/RNBQKBNR b KQkq -": {"d7d5"},

	// After 1.e4 d5 — Scandinavian (white moves)
	"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq -": {"e4d5"},

	// After 1.e4 Nf6 — Alekhine (white moves)
	"rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq -": {"e4e5", "b1c3"},

	// After 1.e4 d6 — Pirc (white moves)
	"rnbqkbnr/ppp1pppp/3p4/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq -": {"d2d4", "g1f3"},

	// After 1.d4 d5 (white moves) — Queen's Gambit and company
	"rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq -": {"c2c4", "g1f3", "c1f4"},

	// QGD: 1.d4 d5 2.c4 (black moves) — e6 (QGD), c6 (Slav), dxc4 (QGA)
	"rnbqkbnr/ppp1pppp/8/3p4/2PP4/8/PP2PPPP/RNBQKBNR b KQkq -": {"e7e6", "c7c6", "d5c4"},

	// QGD: 1.d4 d5 2.c4 e6 (white moves)
	"rnbqkbnr/ppp2ppp/4p3/3p4/2PP4/8/PP2PPPP/RNBQKBNR w KQkq -": {"b1c3", "g1f3"},

	// Slav: 1.d4 d5 2.c4 c6 (white moves)
	"rnbqkbnr/pp2pppp/2p5/3p4/2PP4/8/PP2PPPP/RNBQKBNR w KQkq -": {"g1f3", "b1c3"},

	// After 1.d4 Nf6 (white moves)
	"rnbqkb1r/pppppppp/5n2/8/3P4/8/PPP1PPPP/RNBQKBNR w KQkq -": {"c2c4", "g1f3"},

	// Indian: 1.d4 Nf6 2.c4 (black moves) — e6 (Nimzo/QID), g6 (KID/Grunfeld), c5 (Benoni)
	"rnbqkb1r/pppppppp/5n2/8/2PP4/8/PP2PPPP/RNBQKBNR b KQkq -": {"e7e6", "g7g6", "c7c5"},

	// Indian: 1.d4 Nf6 2.c4 e6 (white moves)
	"rnbqkb1r/pppp1ppp/4pn2/8/2PP4/8/PP2PPPP/RNBQKBNR w KQkq -": {"b1c3", "g1f3", "g2g3"},

	// Indian: 1.d4 Nf6 2.c4 g6 (white moves)
	"rnbqkb1r/pppppp1p/5np1/8/2PP4/8/PP2PPPP/RNBQKBNR w KQkq -": {"b1c3"},

	// KID: 1.d4 Nf6 2.c4 g6 3.Nc3 (black moves)
	"rnbqkb1r/pppppp1p/5np1/8/2PP4/2N5/PP2PPPP/R1BQKBNR b KQkq -": {"f8g7"},

	// After 1.d4 e6 (white moves)
	"rnbqkbnr/pppp1ppp/4p3/8/3P4/8/PPP1PPPP/RNBQKBNR w KQkq -": {"c2c4", "g1f3", "e2e4"},

	// After 1.d4 g6 (white moves) — Modern
	"rnbqkbnr/pppppp1p/6p1/8/3P4/8/PPP1PPPP/RNBQKBNR w KQkq -": {"c2c4", "e2e4"},

	// After 1.Nf3 d5 (white moves)
	"rnbqkbnr/ppp1pppp/8/3p4/8/5N2/PPPPPPPP/RNBQKB1R w KQkq -": {"d2d4", "g2g3", "c2c4"},

	// After 1.Nf3 Nf6 (white moves)
	"rnbqkb1r/pppppppp/5n2/8/8/5N2/PPPPPPPP/RNBQKB1R w KQkq -": {"d2d4", "c2c4", "g2g3"},

	// After 1.c4 e5 (white moves) — English/Reversed Sicilian
	"rnbqkbnr/pppp1ppp/8/4p3/2P5/8/PP1PPPPP/RNBQKBNR w KQkq -": {"b1c3", "g2g3", "g1f3"},

	// After 1.c4 Nf6 (white moves)
	"rnbqkb1r/pppppppp/5n2/8/2P5/8/PP1PPPPP/RNBQKBNR w KQkq -": {"b1c3", "g1f3", "d2d4"},

	// After 1.c4 c5 (white moves) — Symmetrical English
	"rnbqkbnr/pp1ppppp/8/2p5/2P5/8/PP1PPPPP/RNBQKBNR w KQkq -": {"g1f3", "b1c3"},
}
