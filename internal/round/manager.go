// internal/round/manager.go
//
// Per-session round registry and acquisition gatekeeper.
//
// Responsibilities:
//   - Hold the current *game.Round per session, keyed by session ID
//     (concurrency-safe via a mutex; state is lost on restart).
//   - Gate word acquisition: at most one fetch outstanding per session.
//     A second new-round request while a fetch is in flight is REJECTED
//     with a StateError (not queued). See DESIGN.md.
//   - Discard stale fetch results: Reset supersedes any in-flight fetch
//     by bumping a per-session generation counter; the superseded fetch
//     compares its generation on completion and throws its word away, so
//     two acquisitions can never race an assignment out of order.
//   - Project round state into a View for the host UI (the engine types
//     never cross the HTTP boundary directly).

package round

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/quintle/quintle/internal/game"
)

// WordSource supplies a secret word for a new round.
type WordSource interface {
	Acquire(ctx context.Context, difficulty string) (string, error)
}

// Manager owns all live rounds.
type Manager struct {
	mu       sync.Mutex
	source   WordSource
	sessions map[string]*session
}

type session struct {
	round      *game.Round
	loading    bool   // a word fetch for this session is outstanding
	generation uint64 // bumped on every new round; guards stale fetches
}

// NewManager constructs a Manager backed by the given word source.
func NewManager(source WordSource) *Manager {
	return &Manager{source: source, sessions: make(map[string]*session)}
}

// View is the render projection of a round, safe to hand to the host UI.
type View struct {
	RoundID     string       `json:"roundId"`
	Status      game.Status  `json:"status"`
	Guesses     []game.Guess `json:"guesses"`
	GuessesLeft int          `json:"guessesLeft"`
	Secret      string       `json:"secret,omitempty"` // revealed only on won/lost
	Loading     bool         `json:"loading"`
}

// Start begins a new round for the session, acquiring a word from the
// source. If a fetch for this session is already in flight, Start fails
// with a StateError and changes nothing.
//
// On acquisition failure the round stays in awaiting_word with guessing
// disabled, and the error is returned alongside the view.
func (m *Manager) Start(ctx context.Context, sessionID, difficulty string) (View, error) {
	return m.begin(ctx, sessionID, difficulty, false)
}

// Reset abandons the session's current round and starts a fresh one.
// Unlike Start it is accepted while a fetch is in flight: the in-flight
// fetch belongs to the superseded round and its result is discarded.
func (m *Manager) Reset(ctx context.Context, sessionID, difficulty string) (View, error) {
	return m.begin(ctx, sessionID, difficulty, true)
}

func (m *Manager) begin(ctx context.Context, sessionID, difficulty string, supersede bool) (View, error) {
	m.mu.Lock()
	st := m.sessions[sessionID]
	if st == nil {
		st = &session{}
		m.sessions[sessionID] = st
	}
	if st.loading && !supersede {
		m.mu.Unlock()
		return View{}, &game.StateError{Reason: "word fetch already in progress"}
	}
	st.loading = true
	st.generation++
	gen := st.generation
	r := game.New(uuid.NewString())
	st.round = r
	m.mu.Unlock()

	// Fetch outside the lock; only the network call suspends.
	word, err := m.source.Acquire(ctx, difficulty)

	m.mu.Lock()
	defer m.mu.Unlock()
	if st.generation != gen {
		// A reset superseded this fetch; the word (or error) is stale.
		return project(st), &game.StateError{Reason: "round superseded"}
	}
	st.loading = false
	if err != nil {
		// Blocking failure: round remains awaiting_word, guessing disabled.
		return project(st), err
	}
	if aerr := r.AssignWord(word); aerr != nil {
		return project(st), aerr
	}
	return project(st), nil
}

// StartFixed begins a round with a caller-supplied answer, bypassing the
// word source. Intended for tests and the config-gated answer override.
func (m *Manager) StartFixed(sessionID, answer string) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.sessions[sessionID]
	if st == nil {
		st = &session{}
		m.sessions[sessionID] = st
	}
	if st.loading {
		return View{}, &game.StateError{Reason: "word fetch already in progress"}
	}
	st.generation++
	r := game.New(uuid.NewString())
	if err := r.AssignWord(answer); err != nil {
		return project(st), err
	}
	st.round = r
	return project(st), nil
}

// Guess submits a guess against the session's current round.
func (m *Manager) Guess(sessionID, raw string) (game.Guess, View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.sessions[sessionID]
	if st == nil || st.round == nil {
		return game.Guess{}, View{}, &game.StateError{Reason: "no active round"}
	}
	g, err := st.round.SubmitGuess(raw)
	return g, project(st), err
}

// State returns the view of the session's current round.
func (m *Manager) State(sessionID string) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.sessions[sessionID]
	if st == nil || st.round == nil {
		return View{}, &game.StateError{Reason: "no active round"}
	}
	return project(st), nil
}

// project must be called with m.mu held.
func project(st *session) View {
	r := st.round
	if r == nil {
		return View{Status: game.StatusAwaitingWord, Loading: st.loading}
	}
	status := r.Status()
	guesses := make([]game.Guess, len(r.Guesses))
	copy(guesses, r.Guesses)
	return View{
		RoundID:     r.ID,
		Status:      status,
		Guesses:     guesses,
		GuessesLeft: game.MaxGuesses - len(r.Guesses),
		Secret:      r.RevealedSecret(),
		Loading:     st.loading,
	}
}
