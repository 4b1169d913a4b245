// internal/game/types.go
//
// Core type definitions for the round engine.
// Defines:
//   - Mark: per-letter classification of a guess (correct/present/absent).
//   - Status: coarse round state (awaiting_word/in_progress/won/lost).
//   - Guess: one accepted guess together with its classification.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is correct and in the correct position.
//   - "present": letter exists in the secret word but in a different position.
//   - "absent":  letter does not exist in the secret word, or every
//     occurrence has already been claimed by another position.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Status represents the lifecycle state of a round.
type Status string

const (
	// StatusAwaitingWord means no secret word has been assigned yet;
	// guess submission is disabled.
	StatusAwaitingWord Status = "awaiting_word"
	StatusInProgress   Status = "in_progress"
	StatusWon          Status = "won"
	StatusLost         Status = "lost"
)

// Terminal reports whether the status admits no further guesses.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// Guess is one accepted guess and its per-letter classification.
// Marks always has exactly WordLength entries.
type Guess struct {
	Word  string `json:"word"`
	Marks []Mark `json:"marks"`
}

const (
	// WordLength is the required length of secret words and guesses.
	WordLength = 5
	// MaxGuesses is the number of guesses allowed per round.
	MaxGuesses = 5
)
