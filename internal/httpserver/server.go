// internal/httpserver/server.go
//
// HTTP host adapter for the round engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Round endpoints (session-scoped): POST /round/new, POST /round/guess,
//     POST /round/reset, GET /round/state.
//   - Signed session cookie (see session.go).
//   - Per-request alert collection: warnings raised during word acquisition
//     are drained into the response body, standing in for the host UI's
//     sendAlert callback.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Engine errors map to HTTP statuses: ValidationError → 422,
//     StateError → 409; everything else is a 502 from the word provider.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/quintle/quintle/internal/alert"
	"github.com/quintle/quintle/internal/config"
	"github.com/quintle/quintle/internal/game"
	"github.com/quintle/quintle/internal/round"
)

// Server bundles router, round manager, and configuration.
type Server struct {
	r      *chi.Mux
	rounds *round.Manager
	cfg    config.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(rounds *round.Manager, cfg config.Config) *Server {
	s := &Server{r: chi.NewRouter(), rounds: rounds, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"quintle","endpoints":["/health","POST /round/new","POST /round/guess","POST /round/reset","GET /round/state"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Round endpoints — all session-scoped.
	s.r.Group(func(r chi.Router) {
		r.Use(s.withSession)
		r.Post("/round/new", s.handleNewRound)
		r.Post("/round/guess", s.handleGuess)
		r.Post("/round/reset", s.handleReset)
		r.Get("/round/state", s.handleState)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ ROUND --------------------------------------

// newRoundReq is the payload for POST /round/new and /round/reset.
type newRoundReq struct {
	Difficulty string `json:"difficulty"` // optional; config default applies
	Answer     string `json:"answer"`     // optional fixed answer (testing; config-gated)
}

// roundRes is the common success envelope for round endpoints.
type roundRes struct {
	Round  round.View    `json:"round"`
	Guess  *game.Guess   `json:"guess,omitempty"` // the guess just scored
	Alerts []alert.Alert `json:"alerts,omitempty"`
}

// handleNewRound starts a fresh round for the session.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Answer != "" && s.cfg.AllowFixedAnswer {
		view, err := s.rounds.StartFixed(sessionID(r), req.Answer)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(roundRes{Round: view})
		return
	}

	col := &alert.Collector{}
	ctx := alert.WithCollector(r.Context(), col)
	view, err := s.rounds.Start(ctx, sessionID(r), s.difficulty(req.Difficulty))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(roundRes{Round: view, Alerts: col.Drain()})
}

// handleReset abandons the current round and starts a new one. Accepted
// even while a word fetch is pending; the stale fetch result is discarded.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	col := &alert.Collector{}
	ctx := alert.WithCollector(r.Context(), col)
	view, err := s.rounds.Reset(ctx, sessionID(r), s.difficulty(req.Difficulty))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(roundRes{Round: view, Alerts: col.Drain()})
}

// guessReq is the payload for POST /round/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

// handleGuess applies a guess to the session's round.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, view, err := s.rounds.Guess(sessionID(r), req.Guess)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if view.Status.Terminal() {
		log.Info().Str("roundId", view.RoundID).Str("status", string(view.Status)).Msg("round finished")
	}
	_ = json.NewEncoder(w).Encode(roundRes{Round: view, Guess: &g})
}

// handleState reports the session's current round.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	view, err := s.rounds.State(sessionID(r))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(roundRes{Round: view})
}

// difficulty applies the configured default when the request omits one.
func (s *Server) difficulty(requested string) string {
	if requested != "" {
		return requested
	}
	return s.cfg.Difficulty
}

// writeEngineError maps engine errors onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	var verr *game.ValidationError
	var serr *game.StateError
	status := http.StatusBadGateway // word provider failure
	switch {
	case errors.As(err, &verr):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &serr):
		status = http.StatusConflict
	}
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	http.Error(w, string(body), status)
}
