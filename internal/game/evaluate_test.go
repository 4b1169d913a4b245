package game

import (
	"strings"
	"testing"
)

func TestEvaluateExactMatch(t *testing.T) {
	for _, secret := range []string{"CRANE", "ROBOT", "QUIET"} {
		marks := Evaluate(secret, secret)
		for i, m := range marks {
			if m != MarkCorrect {
				t.Errorf("secret %s pos %d: got %s, want correct", secret, i, m)
			}
		}
	}
}

func TestEvaluateNoSharedLetters(t *testing.T) {
	marks := Evaluate("PUDGY", "CRANE")
	for i, m := range marks {
		if m != MarkAbsent {
			t.Errorf("pos %d: got %s, want absent", i, m)
		}
	}
}

func TestEvaluateTwoPass(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		secret string
		want   []Mark
	}{
		{
			name:   "repeated guess letter against double secret letter",
			guess:  "ERASE",
			secret: "SPEED",
			want:   []Mark{MarkPresent, MarkAbsent, MarkAbsent, MarkPresent, MarkPresent},
		},
		{
			name:   "second occurrence exhausted",
			guess:  "ALLEY",
			secret: "APPLE",
			want:   []Mark{MarkCorrect, MarkPresent, MarkAbsent, MarkPresent, MarkAbsent},
		},
		{
			name:   "correct position claims before present pass",
			guess:  "STACK",
			secret: "REACT",
			want:   []Mark{MarkAbsent, MarkPresent, MarkCorrect, MarkCorrect, MarkAbsent},
		},
		{
			name:   "all letters shared, three displaced",
			guess:  "TRACE",
			secret: "REACT",
			want:   []Mark{MarkPresent, MarkPresent, MarkCorrect, MarkCorrect, MarkPresent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.guess, tt.secret)
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("guess %s vs %s pos %d: got %s, want %s",
						tt.guess, tt.secret, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// For any letter L, the number of non-absent marks for L must never exceed
// the number of occurrences of L in the secret.
func TestEvaluateNeverOverclaims(t *testing.T) {
	pairs := []struct{ guess, secret string }{
		{"ERASE", "SPEED"},
		{"EEEEE", "SPEED"},
		{"SPEED", "ERASE"},
		{"ALLEY", "APPLE"},
		{"LLLLL", "APPLE"},
		{"BANAL", "CANAL"},
	}
	for _, p := range pairs {
		marks := Evaluate(p.guess, p.secret)
		claimed := map[rune]int{}
		for i, r := range p.guess {
			if marks[i] != MarkAbsent {
				claimed[r]++
			}
		}
		for r, n := range claimed {
			if have := strings.Count(p.secret, string(r)); n > have {
				t.Errorf("guess %s vs %s: letter %c claimed %d times, secret has %d",
					p.guess, p.secret, r, n, have)
			}
		}
	}
}

func TestEvaluateIsPure(t *testing.T) {
	first := Evaluate("ERASE", "SPEED")
	second := Evaluate("ERASE", "SPEED")
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pos %d differs across calls: %s vs %s", i, first[i], second[i])
		}
	}
}
