package anagram

import (
	"errors"

	"github.com/wordjumble/jumble/lexicon"
)

// ErrInvalidInput is returned when a solve argument is empty or contains
// non-alphabetic characters.
var ErrInvalidInput = errors.New("word must be a non-empty alphabetic string")

// Solve returns every distinct dictionary word that is an anagram of
// scrambled, in source encounter order. An empty result with a nil error
// means the word has no anagram in the list; that is a different outcome
// from an invalid argument.
func Solve(scrambled string, tokens []string, lf lexicon.LengthFilter) ([]string, error) {
	if !lexicon.Accept(scrambled, lexicon.LengthFilter{}) {
		return nil, ErrInvalidInput
	}
	word := lexicon.Normalize(scrambled)
	key := Key(word)

	seen := make(map[string]bool)
	var matches []string
	for _, token := range tokens {
		cand := lexicon.Normalize(token)
		if len(cand) != len(word) || !lexicon.Accept(token, lf) {
			continue
		}
		if seen[cand] {
			continue
		}
		if Key(cand) == key {
			matches = append(matches, cand)
			seen[cand] = true
		}
	}
	return matches, nil
}
