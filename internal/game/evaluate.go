// internal/game/evaluate.go
//
// Guess scoring using the standard two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) secret letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for
//     that letter, mark Present and decrement the count; otherwise Absent.
//
// This ensures correct behavior with repeated letters in both secret and
// guess: for any letter L, Correct+Present never exceeds the number of
// occurrences of L in the secret, and Correct positions claim their
// letters before the Present pass scans.

package game

// Evaluate scores guess against secret and returns one Mark per position.
// Both strings must be WordLength uppercase A-Z; callers normalize first.
// Evaluate is pure: no state is carried between calls.
func Evaluate(guess, secret string) []Mark {
	n := len(guess)
	res := make([]Mark, n)
	guessRunes := []rune(guess)
	secretRunes := []rune(secret)

	// Letter frequency for the non-correct positions (A-Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guessRunes[i] == secretRunes[i] {
			res[i] = MarkCorrect
		} else {
			counts[idx(secretRunes[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := idx(guessRunes[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter rune to 0..25.
// Assumes inputs are validated to A-Z elsewhere.
func idx(r rune) int { return int(r - 'A') }

// allCorrect returns true if every mark is MarkCorrect.
func allCorrect(m []Mark) bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return true
}

// isAlpha checks that a string consists only of uppercase A-Z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
