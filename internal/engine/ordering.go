package engine

import (
	"github.com/C2H6Ethan/DistributedChess/internal/board"
)

// Move ordering priorities
const (
	hashMoveScore = 10000000 // TT move gets highest priority
	captureBase   = 1000000  // Base score for captures, plus MVV-LVA
	killerScore1  = 900000   // First killer move
	killerScore2  = 800000   // Second killer move

	historyMax = 1000000 // History score clamp
)

// scoreMove returns the ordering priority for a single move: hash move,
// then captures by victim-minus-attacker material, then killers, then the
// history score for quiet moves.
func (s *Searcher) scoreMove(m board.Move, ply int, hashMove board.Move) int {
	if m == hashMove && hashMove != board.NoMove {
		return hashMoveScore
	}

	if m.IsCapture() {
		attacker := s.pos.PieceAt(m.From()).Type()
		victim := board.Pawn // en passant victim
		if !m.IsEnPassant() {
			victim = s.pos.PieceAt(m.To()).Type()
		}
		return captureBase + board.PieceValue[victim] - board.PieceValue[attacker]
	}

	if ply < MaxPly {
		if m == s.killers[ply][0] {
			return killerScore1
		}
		if m == s.killers[ply][1] {
			return killerScore2
		}
	}

	return s.history[s.pos.SideToMove][m.From()][m.To()]
}

// scoreMoves fills scores for every move in the list.
func (s *Searcher) scoreMoves(moves *board.MoveList, scores []int, ply int, hashMove board.Move) {
	for i := 0; i < moves.Len(); i++ {
		scores[i] = s.scoreMove(moves.Get(i), ply, hashMove)
	}
}

// sortMoves sorts moves by score, descending. Selection sort is sufficient
// for the bounded move-list sizes in play here.
func sortMoves(moves *board.MoveList, scores []int) {
	n := moves.Len()
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			moves.Swap(i, best)
			scores[i], scores[best] = scores[best], scores[i]
		}
	}
}

// updateKillers promotes a quiet cutoff move into killer slot 0, shifting
// the previous slot 0 down, unless it is already slot 0.
func (s *Searcher) updateKillers(m board.Move, ply int) {
	if ply >= MaxPly {
		return
	}
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// updateHistory adds the depth-squared bonus for a quiet cutoff move,
// clamped to historyMax.
func (s *Searcher) updateHistory(c board.Color, m board.Move, depth int) {
	h := &s.history[c][m.From()][m.To()]
	*h += depth * depth
	if *h > historyMax {
		*h = historyMax
	}
}
