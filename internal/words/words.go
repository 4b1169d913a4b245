// internal/words/words.go
//
// Fixed local fallback word list for the word provider.
//
// Responsibilities:
//   - Load the fallback list from an environment-provided file or fall back
//     to the embedded default.
//   - Maintain a set for quick membership checks.
//   - Supply RandomWord for uniform selection via crypto/rand.
//
// Initialization behavior (Init):
//   1. If WORDS_FALLBACK_FILE is set, load the list from that file.
//   2. Otherwise use the embedded default from `fallback.txt`.
//
// Constraints:
//   • Words must be 5 alphabetic letters; others are skipped on load.
//   • Lists are normalized to uppercase.
//   • The list is read-only after Init; Init runs once (sync.Once).

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/samber/lo"
)

//go:embed fallback.txt
var embeddedFallback string

var (
	initOnce   sync.Once
	fallback   []string
	wordSet    map[string]struct{}
	initialErr error
)

// ErrEmptyList is returned when no usable fallback words are available.
var ErrEmptyList = errors.New("words: fallback list is empty")

// Init loads the fallback list exactly once.
// Returns an error if the list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var list []string
		if path := os.Getenv("WORDS_FALLBACK_FILE"); path != "" {
			var err error
			list, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			list = normalizeLines(embeddedFallback)
		}

		fallback = list
		wordSet = lo.SliceToMap(list, func(w string) (string, struct{}) {
			return w, struct{}{}
		})
		if len(fallback) == 0 {
			initialErr = ErrEmptyList
		}
	})
	return initialErr
}

// RandomWord returns a uniformly random word from the fallback list.
// Returns ErrEmptyList if Init failed or loaded nothing.
func RandomWord() (string, error) {
	if len(fallback) == 0 {
		return "", ErrEmptyList
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(fallback))))
	if err != nil {
		// crypto/rand is effectively infallible; keep play alive anyway.
		return fallback[0], nil
	}
	return fallback[n.Int64()], nil
}

// Contains reports whether w (case-insensitive) is in the fallback list.
func Contains(w string) bool {
	_, ok := wordSet[strings.ToUpper(w)]
	return ok
}

// Count returns the number of loaded fallback words.
func Count() int { return len(fallback) }

// readWordFile loads one word per line from a file, uppercases, trims, and
// keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return normalize(lines), nil
}

// normalizeLines processes an embedded multiline string.
func normalizeLines(s string) []string {
	return normalize(strings.Split(s, "\n"))
}

func normalize(lines []string) []string {
	cleaned := lo.Map(lines, func(l string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(l))
	})
	return lo.Filter(cleaned, func(w string, _ int) bool {
		// Comments and blank lines fail the alphabetic check.
		return len(w) == 5 && isUpperAlpha(w)
	})
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
