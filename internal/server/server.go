// Package server exposes the engine as a stateless request/response HTTP
// service: move validation on POST /move and best-move search on
// POST /search, both JSON.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/C2H6Ethan/DistributedChess/internal/board"
	"github.com/C2H6Ethan/DistributedChess/internal/book"
	"github.com/C2H6Ethan/DistributedChess/internal/engine"
)

// GameState classifies the position after a move was applied.
type GameState string

const (
	StateActive           GameState = "ACTIVE"
	StateCheckmate        GameState = "CHECKMATE"
	StateStalemate        GameState = "STALEMATE"
	StateDraw50Move       GameState = "DRAW_50_MOVE"
	StateDrawInsufficient GameState = "DRAW_INSUFFICIENT"
)

const (
	minDepth     = 1
	maxDepth     = 20
	defaultDepth = 4
)

// Server holds the process-wide engine state: the shared transposition
// table (persists across requests, intended) and the opening book. Each
// request gets its own Position and search context; nothing else is shared.
type Server struct {
	tt   *engine.TranspositionTable
	book *book.Book
}

// New creates a server around a transposition table and an opening book.
// A nil book disables book probing.
func New(tt *engine.TranspositionTable, b *book.Book) *Server {
	return &Server{tt: tt, book: b}
}

// Handler returns the HTTP handler for the engine endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /move", s.handleMove)
	mux.HandleFunc("POST /search", s.handleSearch)
	return mux
}

type moveRequest struct {
	Fen     *string `json:"fen"`
	UciMove *string `json:"uci_move"`
}

type moveResponse struct {
	Status    string    `json:"status"`
	GameState GameState `json:"game_state,omitempty"`
	NewFen    string    `json:"new_fen,omitempty"`
}

type searchRequest struct {
	Fen   *string `json:"fen"`
	Depth *int    `json:"depth"`
	Noise int     `json:"noise"`
}

type searchResponse struct {
	BestMove string `json:"best_move"`
	Score    int    `json:"score"`
	Depth    int    `json:"depth"`
	Nodes    int    `json:"nodes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleMove validates and applies a coordinate move: 400 for malformed
// requests, status INVALID when the rules refuse the move, otherwise
// status VALID with the classified new position.
func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Fen == nil || req.UciMove == nil {
		writeError(w, http.StatusBadRequest, "missing fen or uci_move")
		return
	}

	pos, err := board.ParseFEN(*req.Fen)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse FEN")
		return
	}

	m := pos.ParseCoordinateMove(*req.UciMove)
	if m == board.NoMove {
		writeJSON(w, http.StatusOK, moveResponse{Status: "INVALID"})
		return
	}

	pos.MakeMove(m)

	writeJSON(w, http.StatusOK, moveResponse{
		Status:    "VALID",
		GameState: classify(pos),
		NewFen:    pos.ToFEN(),
	})
}

// handleSearch consults the opening book, then runs iterative deepening to
// the requested depth.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Fen == nil {
		writeError(w, http.StatusBadRequest, "missing fen")
		return
	}

	depth := defaultDepth
	if req.Depth != nil {
		depth = *req.Depth
	}
	if depth < minDepth || depth > maxDepth {
		writeError(w, http.StatusBadRequest, "depth must be 1-20")
		return
	}
	if req.Noise < 0 {
		writeError(w, http.StatusBadRequest, "noise must be >= 0")
		return
	}

	pos, err := board.ParseFEN(*req.Fen)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse FEN")
		return
	}

	// Book hit: a known position answers instantly with zero nodes.
	if m, ok := s.book.Probe(pos); ok {
		writeJSON(w, http.StatusOK, searchResponse{
			BestMove: m.String(),
			Score:    0,
			Depth:    depth,
			Nodes:    0,
		})
		return
	}

	searcher := engine.NewSearcher(s.tt)
	searcher.SetNoise(req.Noise)
	result := searcher.Search(pos, depth)

	best := ""
	if result.BestMove != board.NoMove {
		best = result.BestMove.String()
	}

	log.Printf("search fen=%q depth=%d nodes=%d score=%d best=%s tt=%.1f%%",
		*req.Fen, depth, result.Nodes, result.Score, best, s.tt.HitRate())

	writeJSON(w, http.StatusOK, searchResponse{
		BestMove: best,
		Score:    result.Score,
		Depth:    depth,
		Nodes:    result.Nodes,
	})
}

// classify determines the game state of the position after a move:
// mate and stalemate first, then the automatic draws.
func classify(pos *board.Position) GameState {
	hasMoves := pos.HasLegalMoves()
	inCheck := pos.InCheck()

	switch {
	case !hasMoves && inCheck:
		return StateCheckmate
	case !hasMoves:
		return StateStalemate
	case pos.HalfMoveClock >= 100:
		return StateDraw50Move
	case pos.IsInsufficientMaterial():
		return StateDrawInsufficient
	default:
		return StateActive
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
