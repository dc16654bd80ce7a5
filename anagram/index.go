package anagram

import (
	"sort"

	"github.com/wordjumble/jumble/lexicon"
)

// Index maps an anagram key to the words sharing that key. Each class
// preserves the order its words were encountered in the source.
type Index map[string][]string

// NewIndex builds an index from raw tokens. Ineligible tokens are filtered,
// not errored. The result is deterministic given a deterministic token
// order, and read-only after construction.
func NewIndex(tokens []string, lf lexicon.LengthFilter) Index {
	idx := make(Index)
	for _, token := range tokens {
		if !lexicon.Accept(token, lf) {
			continue
		}
		word := lexicon.Normalize(token)
		key := Key(word)
		idx[key] = append(idx[key], word)
	}
	return idx
}

// Uniques returns every word whose anagram class has exactly one member,
// sorted lexicographically. These are the puzzle-safe words: a scramble of
// one of them solves back to exactly one dictionary word.
func (idx Index) Uniques() []string {
	var words []string
	for _, class := range idx {
		if len(class) == 1 {
			words = append(words, class[0])
		}
	}
	sort.Strings(words)
	return words
}
