// Package similarity scores how alike two short strings are.
package similarity

import (
	"strings"
	"unicode"
)

// Normalize lowercases s, strips punctuation and collapses whitespace.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			space = false
		case !space:
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}

func bigrams(s string) map[string]int {
	runes := []rune(strings.ReplaceAll(s, " ", ""))
	out := make(map[string]int, len(runes))
	for i := 0; i+1 < len(runes); i++ {
		out[string(runes[i:i+2])]++
	}
	return out
}

// Dice returns the Sørensen-Dice coefficient over character bigrams of the
// normalized inputs, in [0, 1].
func Dice(a, b string) float64 {
	a, b = Normalize(a), Normalize(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	ba, bb := bigrams(a), bigrams(b)
	total := 0
	for _, n := range ba {
		total += n
	}
	for _, n := range bb {
		total += n
	}
	if total == 0 {
		return 0
	}
	shared := 0
	for g, n := range ba {
		shared += min(n, bb[g])
	}
	return 2 * float64(shared) / float64(total)
}
