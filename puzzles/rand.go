// Package puzzles creates jumble puzzles: it scrambles words and selects
// puzzle-safe words from the unique-anagram pool of an index.
package puzzles

import "lukechampine.com/frand"

// RandSource is the single source of randomness for scrambling and word
// selection. It is an interface so tests can drive both deterministically.
type RandSource interface {
	// Intn returns a uniform random int in [0, n). n must be > 0.
	Intn(n int) int
}

type frandSource struct{}

func (frandSource) Intn(n int) int { return frand.Intn(n) }

// DefaultRand returns a source backed by the process-wide frand generator.
func DefaultRand() RandSource { return frandSource{} }
