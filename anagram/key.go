// Package anagram indexes a word list by anagram key and answers
// "what does this scramble unscramble to" queries against it.
package anagram

import "sort"

// Key returns the anagram key of a word: its letters sorted ascending.
// Two words share a key iff they have identical letter multisets. The word
// must already be normalized to lowercase a-z.
func Key(word string) string {
	letters := []byte(word)
	sort.Slice(letters, func(i, j int) bool {
		return letters[i] < letters[j]
	})
	return string(letters)
}
