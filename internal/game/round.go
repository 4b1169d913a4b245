// internal/game/round.go
//
// Round state machine for a single word-guessing round.
// Responsibilities:
//   - Hold the secret word and the ordered guess history.
//   - Validate and apply guesses (length, alphabetic).
//   - Score guesses via Evaluate and derive win/loss transitions.
//
// Lifecycle: awaiting_word → in_progress → {won, lost}. A round starts
// without a secret; the word provider assigns one via AssignWord. Reset is
// modeled one level up (the round manager replaces the Round wholesale), so
// a Round never moves backwards out of a terminal state.

package game

import "strings"

// Round holds the state of a single round. The secret word is owned
// exclusively by the round and is immutable once assigned.
type Round struct {
	ID      string  // Unique round identifier.
	Secret  string  // The secret word (always uppercase); empty while awaiting.
	Guesses []Guess // Accepted guesses in submission order, oldest first.
	won     bool
}

// New constructs a round with no secret word assigned.
func New(id string) *Round {
	return &Round{ID: id, Guesses: []Guess{}}
}

// AssignWord sets the secret word, moving the round to in_progress.
// Returns a StateError if a word was already assigned, or a
// ValidationError if the word is not 5 letters A-Z.
func (r *Round) AssignWord(secret string) error {
	if r.Secret != "" {
		return &StateError{Reason: "word already assigned"}
	}
	word := strings.ToUpper(strings.TrimSpace(secret))
	if len(word) != WordLength || !isAlpha(word) {
		return &ValidationError{Reason: MsgInvalidLength}
	}
	r.Secret = word
	return nil
}

// Status derives the round state from the guess history.
func (r *Round) Status() Status {
	switch {
	case r.Secret == "":
		return StatusAwaitingWord
	case r.won:
		return StatusWon
	case len(r.Guesses) >= MaxGuesses:
		return StatusLost
	default:
		return StatusInProgress
	}
}

// SubmitGuess validates and scores a guess, mutating the round state.
// The raw input is trimmed and uppercased before any checks.
//
// Failure modes (round unchanged in all of them):
//   - StateError if no word is assigned yet or the round is terminal.
//   - ValidationError if the normalized input is not 5 letters A-Z.
//
// On success the guess is appended to the history; if every mark is
// Correct the round is won, else if this was the fifth guess it is lost.
func (r *Round) SubmitGuess(raw string) (Guess, error) {
	if r.Secret == "" {
		return Guess{}, &StateError{Reason: MsgNotReady}
	}
	if r.Status().Terminal() {
		return Guess{}, &StateError{Reason: MsgGameOver}
	}
	word := strings.ToUpper(strings.TrimSpace(raw))
	if len(word) != WordLength || !isAlpha(word) {
		return Guess{}, &ValidationError{Reason: MsgInvalidLength}
	}

	marks := Evaluate(word, r.Secret)
	g := Guess{Word: word, Marks: marks}
	r.Guesses = append(r.Guesses, g)
	if allCorrect(marks) {
		r.won = true
	}
	return g, nil
}

// RevealedSecret returns the secret word once the round is terminal, and
// an empty string otherwise. The host UI uses it to show the answer on a
// loss without leaking it mid-round.
func (r *Round) RevealedSecret() string {
	if r.Status().Terminal() {
		return r.Secret
	}
	return ""
}
