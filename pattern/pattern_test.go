package pattern

import (
	"testing"

	"github.com/matryer/is"
)

type patterncase struct {
	pat      string
	expected []string
}

var patternTokens = []string{"camel", "camel", "camels", "label", "cabal", "model"}

var patternTests = []patterncase{
	{"c?m?l", []string{"camel"}},
	{"?a?al", []string{"cabal"}},
	{"?????", []string{"camel", "label", "cabal", "model"}},
	{"camel", []string{"camel"}}, // zero wildcards = exact lookup
	{"camels", []string{"camels"}},
	{"z????", nil},
	{"??????????", nil},
	{"", nil},
}

func TestSolve(t *testing.T) {
	is := is.New(t)
	for _, tc := range patternTests {
		found, err := Solve(tc.pat, patternTokens)
		is.NoErr(err)
		is.Equal(found, tc.expected) // pattern: tc.pat
	}
}

func TestSolveCaseInsensitive(t *testing.T) {
	is := is.New(t)
	found, err := Solve("C?M?L", patternTokens)
	is.NoErr(err)
	is.Equal(found, []string{"camel"})
}

func TestSolveInvalidPattern(t *testing.T) {
	is := is.New(t)
	for _, bad := range []string{"c*mel", "c m l", "c4m?l"} {
		_, err := Solve(bad, patternTokens)
		is.Equal(err, ErrInvalidPattern)
	}
}
