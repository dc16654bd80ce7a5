// Package pattern answers crossword-style queries: a fixed-length pattern
// with some positions pinned to letters and the rest wildcarded.
package pattern

import (
	"errors"

	"github.com/wordjumble/jumble/lexicon"
)

// Wildcard marks an unknown letter position in a query.
const Wildcard = '?'

// ErrInvalidPattern is returned when a pattern contains characters other
// than letters and the wildcard marker.
var ErrInvalidPattern = errors.New("pattern may only contain letters and '?'")

func validPattern(pat string) bool {
	for i := 0; i < len(pat); i++ {
		if pat[i] != Wildcard && (pat[i] < 'a' || pat[i] > 'z') {
			return false
		}
	}
	return true
}

func matches(word, pat string) bool {
	for i := 0; i < len(pat); i++ {
		if pat[i] != Wildcard && pat[i] != word[i] {
			return false
		}
	}
	return true
}

// Solve returns every distinct word of the pattern's exact length whose
// letters agree with the pattern's fixed positions, in source encounter
// order. Comparison is case-insensitive. A pattern with no wildcards is an
// exact-match lookup.
func Solve(pat string, tokens []string) ([]string, error) {
	pat = lexicon.Normalize(pat)
	if !validPattern(pat) {
		return nil, ErrInvalidPattern
	}

	seen := make(map[string]bool)
	var found []string
	for _, token := range tokens {
		if !lexicon.Accept(token, lexicon.LengthFilter{}) {
			continue
		}
		word := lexicon.Normalize(token)
		if len(word) != len(pat) || seen[word] {
			continue
		}
		if matches(word, pat) {
			found = append(found, word)
			seen[word] = true
		}
	}
	return found, nil
}
