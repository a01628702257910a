package engine

import (
	"sync/atomic"

	"github.com/C2H6Ethan/DistributedChess/internal/board"
)

// TTFlag indicates the type of bound stored in the transposition table.
type TTFlag uint8

const (
	TTExact      TTFlag = iota // Exact score
	TTLowerBound               // Failed high (beta cutoff)
	TTUpperBound               // Failed low
)

// TTEntry is one 16-byte transposition-table slot.
type TTEntry struct {
	Key   uint64     // Full Zobrist hash for verification
	Score int32      // Score, mate scores stored root-independent
	Move  board.Move // Best move found
	Depth int8       // Search depth
	Flag  TTFlag     // Type of bound
}

// TranspositionTable is a process-wide, lock-free hash table of search
// results. Entries are key-verified: a probe that races a store reads a
// mismatched key and simply misses, so torn writes are tolerated and no
// lock guards the array.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64

	probes atomic.Uint64
	hits   atomic.Uint64
}

// NewTranspositionTable creates a transposition table with the given size
// in MB, rounded down to a power of two entries.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	const entrySize = 16
	numEntries := roundDownToPowerOf2(uint64(sizeMB) * 1024 * 1024 / entrySize)

	return &TranspositionTable{
		entries: make([]TTEntry, numEntries),
		mask:    numEntries - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up a position. The stored best move is returned whenever the
// key matches, regardless of depth, for move ordering. The score is usable
// (ok=true) only when the stored depth reaches the requested depth and the
// bound applies to the current window. Mate scores are converted back from
// their root-independent stored form using ply.
func (tt *TranspositionTable) Probe(hash uint64, depth, alpha, beta, ply int) (score int, move board.Move, ok bool) {
	tt.probes.Add(1)

	e := tt.entries[hash&tt.mask]
	if e.Key != hash {
		return 0, board.NoMove, false
	}

	move = e.Move

	if int(e.Depth) < depth {
		return 0, move, false
	}

	score = int(e.Score)
	if score > mateBound {
		score -= ply
	} else if score < -mateBound {
		score += ply
	}

	switch e.Flag {
	case TTExact:
		ok = true
	case TTLowerBound:
		ok = score >= beta
	case TTUpperBound:
		ok = score <= alpha
	}

	if ok {
		tt.hits.Add(1)
		return score, move, true
	}
	return 0, move, false
}

// Store saves a search result with depth-preferred replacement: the slot is
// overwritten when empty, when it holds a different position, or when the
// new depth is at least the stored depth. Mate scores are made
// root-independent before storage by offsetting with ply.
func (tt *TranspositionTable) Store(hash uint64, score, depth int, best board.Move, flag TTFlag, ply int) {
	stored := score
	if stored > mateBound {
		stored += ply
	} else if stored < -mateBound {
		stored -= ply
	}

	e := &tt.entries[hash&tt.mask]
	if e.Key != hash || depth >= int(e.Depth) {
		*e = TTEntry{
			Key:   hash,
			Score: int32(stored),
			Move:  best,
			Depth: int8(depth),
			Flag:  flag,
		}
	}
}

// HitRate returns the probe hit rate as a percentage.
func (tt *TranspositionTable) HitRate() float64 {
	probes := tt.probes.Load()
	if probes == 0 {
		return 0
	}
	return float64(tt.hits.Load()) / float64(probes) * 100
}

// Size returns the number of entries in the table.
func (tt *TranspositionTable) Size() uint64 {
	return uint64(len(tt.entries))
}
