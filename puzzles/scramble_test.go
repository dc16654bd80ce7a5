package puzzles

import (
	"sort"
	"testing"

	"github.com/matryer/is"
)

// seqRand replays a fixed sequence of values, reduced mod n.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func sortedLetters(word string) string {
	letters := []byte(word)
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

func TestScrambleDeterministic(t *testing.T) {
	is := is.New(t)
	// Fisher-Yates with j always 0: abc -> cba -> bca
	out, err := Scramble("abc", &seqRand{vals: []int{0}})
	is.NoErr(err)
	is.Equal(out, "bca")
}

func TestScrambleProperties(t *testing.T) {
	words := []string{"ab", "camel", "monkey", "scrabble", "juxtaposition"}
	rng := DefaultRand()
	for _, w := range words {
		for trial := 0; trial < 50; trial++ {
			out, err := Scramble(w, rng)
			if err != nil {
				t.Fatalf("Scramble(%q): %v", w, err)
			}
			if out == w {
				t.Errorf("Scramble(%q) returned the input unchanged", w)
			}
			if sortedLetters(out) != sortedLetters(w) {
				t.Errorf("Scramble(%q) = %q is not a permutation", w, out)
			}
		}
	}
}

func TestScrambleDegenerate(t *testing.T) {
	is := is.New(t)
	for _, w := range []string{"a", "aa", "aaa", "zzzzz"} {
		_, err := Scramble(w, DefaultRand())
		is.Equal(err, ErrDegenerateScramble) // word: w
	}
}

func TestScrambleInvalid(t *testing.T) {
	is := is.New(t)
	for _, w := range []string{"", "c4mel", "ca mel"} {
		_, err := Scramble(w, DefaultRand())
		is.Equal(err, ErrInvalidWord)
	}
}
