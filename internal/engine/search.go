package engine

import (
	"math/rand"

	"github.com/C2H6Ethan/DistributedChess/internal/board"
)

// Search constants
const (
	Infinity  = 1000000
	MateScore = 100000
	mateBound = 90000 // any |score| above this is a mate score

	MaxPly      = 64  // killer table height
	maxPathPly  = 256 // repetition path-hash capacity
	nullMoveR   = 3   // null-move depth reduction
)

// Result is the outcome of a search call.
type Result struct {
	BestMove board.Move
	Score    int
	Nodes    int
}

// Searcher holds the per-call scratch state of one search: node counter,
// killer moves, history scores, and the path hashes used for in-search
// repetition detection. The transposition table is shared and persists
// across calls; everything else is reset by Search.
type Searcher struct {
	pos   *board.Position
	tt    *TranspositionTable
	noise int

	nodes      int
	killers    [MaxPly][2]board.Move
	history    [2][64][64]int
	pathHashes [maxPathPly]uint64

	// Pre-root game hashes for repetition detection, oldest first.
	seed []uint64
}

// NewSearcher creates a searcher bound to a shared transposition table.
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{tt: tt}
}

// SetNoise sets the evaluation noise amplitude in centipawns. Noise
// perturbs leaf evaluations only; zero disables it and makes the search
// deterministic.
func (s *Searcher) SetNoise(noise int) {
	s.noise = noise
}

// SeedHistory provides the hashes of positions that occurred before the
// root, oldest first, so in-search repetition detection can see them.
func (s *Searcher) SeedHistory(hashes []uint64) {
	s.seed = append(s.seed[:0], hashes...)
}

// Search runs iterative deepening to the requested depth and returns the
// best root move, its score, and the cumulative node count. Killers and
// history are cleared per call; the transposition table persists.
func (s *Searcher) Search(pos *board.Position, depth int) Result {
	s.pos = pos
	s.killers = [MaxPly][2]board.Move{}
	s.history = [2][64][64]int{}

	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		score := 0
		if pos.InCheck() {
			score = -MateScore
		}
		return Result{BestMove: board.NoMove, Score: score}
	}

	// Seed the root so repetition detection can see the position the
	// search was called from.
	s.pathHashes[0] = pos.Hash

	var result Result
	var scores [256]int

	for d := 1; d <= depth; d++ {
		s.nodes = 0

		alpha, beta := -Infinity, Infinity
		bestScore := -Infinity
		bestMove := moves.Get(0)

		// Order root moves off the previous iteration's TT entry.
		_, hashMove, _ := s.tt.Probe(pos.Hash, 0, alpha, beta, 0)
		s.scoreMoves(moves, scores[:moves.Len()], 0, hashMove)
		sortMoves(moves, scores[:moves.Len()])

		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			undo := pos.MakeMove(m)

			var score int
			if i == 0 {
				score = -s.negamax(d-1, -beta, -alpha, 1, false)
			} else {
				score = -s.negamax(d-1, -alpha-1, -alpha, 1, false)
				if score > alpha && score < beta {
					score = -s.negamax(d-1, -beta, -alpha, 1, false)
				}
			}

			pos.UnmakeMove(m, undo)

			if score > bestScore {
				bestScore = score
				bestMove = m
			}
			if score > alpha {
				alpha = score
			}
		}

		result.BestMove = bestMove
		result.Score = bestScore
		result.Nodes += s.nodes

		s.tt.Store(pos.Hash, bestScore, d, bestMove, TTExact, 0)
	}

	return result
}

// negamax is the principal-variation search recursion.
func (s *Searcher) negamax(depth, alpha, beta, ply int, noNull bool) int {
	inCheck := s.pos.InCheck()

	// Check extension: never drop into quiescence while in check, so
	// evasions (and mates) at the horizon are found.
	if depth <= 0 {
		if !inCheck {
			return s.quiescence(alpha, beta)
		}
		depth = 1
	}

	s.nodes++

	// A check-extension chain that outruns the path buffer stops here.
	if ply >= maxPathPly {
		return s.evaluate()
	}

	isPV := beta-alpha > 1

	// In-search repetition: the same position earlier on this search path
	// (same side to move, hence step -2) scores as a draw.
	hash := s.pos.Hash
	if s.isRepetition(hash, ply) {
		return 0
	}
	s.pathHashes[ply] = hash

	if s.pos.HalfMoveClock >= 100 || s.pos.IsInsufficientMaterial() {
		return 0
	}

	ttScore, hashMove, ttHit := s.tt.Probe(hash, depth, alpha, beta, ply)
	if ttHit {
		return ttScore
	}

	// Null-move pruning: hand the opponent a free move at reduced depth;
	// if they still can't reach beta, the position is a cutoff. Skipped in
	// check, in PV nodes, after a null, and without non-pawn material.
	if !inCheck && depth >= 3 && !isPV && !noNull && s.pos.HasNonPawnMaterial() {
		undo := s.pos.MakeNullMove()
		nullScore := -s.negamax(depth-1-nullMoveR, -beta, -beta+1, ply+1, true)
		s.pos.UnmakeNullMove(undo)

		if nullScore >= beta {
			return beta
		}
	}

	moves := s.pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		if inCheck {
			return -MateScore + ply // prefer shorter mates
		}
		return 0 // stalemate
	}

	var scores [256]int
	s.scoreMoves(moves, scores[:moves.Len()], ply, hashMove)
	sortMoves(moves, scores[:moves.Len()])

	bestMove := moves.Get(0)
	best := -Infinity
	flag := TTUpperBound

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		isCapture := m.IsCapture()
		isKiller := ply < MaxPly && (m == s.killers[ply][0] || m == s.killers[ply][1])

		undo := s.pos.MakeMove(m)
		givesCheck := s.pos.InCheck()

		// Late-move reduction: late, quiet, non-killer moves at healthy
		// depth get a reduced-depth trial, deeper cuts for later moves.
		// Checking moves need full-depth verification.
		reduction := 0
		if i >= 3 && depth >= 3 && !inCheck && !isCapture && !isKiller && !givesCheck {
			if i >= 6 {
				reduction = 2
			} else {
				reduction = 1
			}
		}

		var score int
		if i == 0 {
			score = -s.negamax(depth-1, -beta, -alpha, ply+1, false)
		} else {
			score = -s.negamax(depth-1-reduction, -alpha-1, -alpha, ply+1, false)

			// Reduced search beat alpha: re-search at full depth.
			if reduction > 0 && score > alpha {
				score = -s.negamax(depth-1, -alpha-1, -alpha, ply+1, false)
			}

			// Zero window failed high inside the window: full re-search.
			if score > alpha && score < beta {
				score = -s.negamax(depth-1, -beta, -alpha, ply+1, false)
			}
		}

		s.pos.UnmakeMove(m, undo)

		if score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			flag = TTExact
		}
		if alpha >= beta {
			flag = TTLowerBound

			if !isCapture {
				s.updateKillers(m, ply)
				s.updateHistory(s.pos.SideToMove, m, depth)
			}
			break
		}
	}

	s.tt.Store(hash, best, depth, bestMove, flag, ply)

	return best
}

// quiescence searches captures only, past the nominal horizon, until the
// position is quiet enough for the static evaluation to stand.
func (s *Searcher) quiescence(alpha, beta int) int {
	s.nodes++

	standPat := s.evaluate()
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	// Delta pruning: if even winning a queen cannot raise alpha, bail.
	const deltaMargin = 900
	if standPat+deltaMargin < alpha {
		return alpha
	}

	captures := s.pos.GenerateLegalCaptures()

	// MVV-LVA ordering
	var scores [256]int
	for i := 0; i < captures.Len(); i++ {
		m := captures.Get(i)
		attacker := s.pos.PieceAt(m.From()).Type()
		victim := board.Pawn
		if !m.IsEnPassant() {
			victim = s.pos.PieceAt(m.To()).Type()
		}
		scores[i] = board.PieceValue[victim] - board.PieceValue[attacker]
	}
	sortMoves(captures, scores[:captures.Len()])

	for i := 0; i < captures.Len(); i++ {
		m := captures.Get(i)
		undo := s.pos.MakeMove(m)
		score := -s.quiescence(-beta, -alpha)
		s.pos.UnmakeMove(m, undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// isRepetition scans earlier same-side positions on the current search
// path, then continues into the seeded pre-root game history.
func (s *Searcher) isRepetition(hash uint64, ply int) bool {
	for i := ply - 2; i >= 0; i -= 2 {
		if s.pathHashes[i] == hash {
			return true
		}
	}

	// seed[len-1] is one ply before the root; only positions with the
	// same side to move (even total distance) can repeat.
	if n := len(s.seed); n > 0 {
		for d := 2 - (ply & 1); d <= n; d += 2 {
			if s.seed[n-d] == hash {
				return true
			}
		}
	}

	return false
}

// evaluate is the leaf evaluation, with optional uniform noise in
// [-noise, +noise] centipawns to weaken play.
func (s *Searcher) evaluate() int {
	eval := Evaluate(s.pos)
	if s.noise > 0 {
		eval += rand.Intn(2*s.noise+1) - s.noise
	}
	return eval
}
