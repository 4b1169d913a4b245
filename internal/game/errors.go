// internal/game/errors.go
//
// Error taxonomy for the round engine.
//   - ValidationError: the guess itself is unacceptable (wrong length,
//     non-alphabetic). The round is unchanged.
//   - StateError: the operation is not legal in the round's current state
//     (terminal round, missing word, acquisition already in flight).
//     The round is unchanged.

package game

// ValidationError reports a guess that failed its preconditions.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// StateError reports an operation attempted against a round that cannot
// accept it (terminal, or not yet ready).
type StateError struct {
	Reason string
}

func (e *StateError) Error() string { return e.Reason }

// User-facing messages, shared with the HTTP adapter.
const (
	MsgInvalidLength = "must be 5 letters"
	MsgGameOver      = "game over"
	MsgNotReady      = "no word assigned yet"
)
