package puzzles

import (
	"errors"

	"github.com/wordjumble/jumble/lexicon"
)

// maxScrambleAttempts bounds the shuffle-retry loop. A two-letter word
// differs from its input with probability 1/2 per shuffle, so the cap is
// effectively unreachable for any non-degenerate word.
const maxScrambleAttempts = 100

var (
	// ErrInvalidWord is returned for an empty or non-alphabetic input.
	ErrInvalidWord = errors.New("word must be a non-empty alphabetic string")
	// ErrDegenerateScramble is returned when a word has no permutation
	// that differs from itself: length under two, or all letters identical.
	ErrDegenerateScramble = errors.New("word cannot be scrambled into a different ordering")
)

// Scramble returns a uniform random permutation of word that is guaranteed
// to differ from word itself. The input is never mutated; the shuffle runs
// on an owned copy of its letters.
func Scramble(word string, rng RandSource) (string, error) {
	if !lexicon.Accept(word, lexicon.LengthFilter{}) {
		return "", ErrInvalidWord
	}
	word = lexicon.Normalize(word)
	if degenerate(word) {
		return "", ErrDegenerateScramble
	}
	if rng == nil {
		rng = DefaultRand()
	}

	letters := make([]byte, len(word))
	for attempt := 0; attempt < maxScrambleAttempts; attempt++ {
		copy(letters, word)
		shuffle(letters, rng)
		if string(letters) != word {
			return string(letters), nil
		}
	}
	return "", ErrDegenerateScramble
}

func degenerate(word string) bool {
	if len(word) < 2 {
		return true
	}
	for i := 1; i < len(word); i++ {
		if word[i] != word[0] {
			return false
		}
	}
	return true
}

// shuffle is a Fisher-Yates shuffle over the letter slice.
func shuffle(letters []byte, rng RandSource) {
	for i := len(letters) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		letters[i], letters[j] = letters[j], letters[i]
	}
}
