package puzzles

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/wordjumble/jumble/anagram"
)

// ErrNoEligibleWords is returned when a puzzle is requested but the
// unique-anagram pool is empty. The caller may relax its length filters and
// rebuild; the generator never returns fewer entries than asked for.
var ErrNoEligibleWords = errors.New("no eligible words in the unique-anagram pool")

// Entry pairs a scrambled word with the word it unscrambles to.
type Entry struct {
	Scrambled string
	Answer    string
}

// Generator draws puzzle words from the unique-anagram pool of an index.
//
// Words with adjacent repeated letters are dropped from the pool up front: a
// scramble of "door" can keep the "oo" run intact and look unscrambled.
// Dropping them before drawing gives the same distribution over eligible
// words as rejection sampling, without the possibility of spinning forever
// on a pool that has none.
type Generator struct {
	pool []string
	rng  RandSource
}

// NewGenerator derives the puzzle-safe pool from idx. A nil rng uses
// DefaultRand.
func NewGenerator(idx anagram.Index, rng RandSource) *Generator {
	if rng == nil {
		rng = DefaultRand()
	}
	pool := lo.Filter(idx.Uniques(), func(word string, _ int) bool {
		return len(word) >= 2 && !hasAdjacentRepeat(word)
	})
	return &Generator{pool: pool, rng: rng}
}

// Pool returns the candidate words, sorted lexicographically. Callers must
// treat the slice as read-only.
func (g *Generator) Pool() []string { return g.pool }

// Generate draws count words uniformly at random, with replacement, from
// the pool and scrambles each one. Duplicate answers across a single puzzle
// are possible. Entries are in draw order.
func (g *Generator) Generate(count int) ([]Entry, error) {
	if count < 1 {
		return nil, fmt.Errorf("word count must be positive, got %d", count)
	}
	if len(g.pool) == 0 {
		return nil, ErrNoEligibleWords
	}
	entries := make([]Entry, count)
	for i := range entries {
		answer := g.pool[g.rng.Intn(len(g.pool))]
		scrambled, err := Scramble(answer, g.rng)
		if err != nil {
			return nil, fmt.Errorf("scrambling %q: %w", answer, err)
		}
		entries[i] = Entry{Scrambled: scrambled, Answer: answer}
	}
	return entries, nil
}

func hasAdjacentRepeat(word string) bool {
	for i := 1; i < len(word); i++ {
		if word[i] == word[i-1] {
			return true
		}
	}
	return false
}
