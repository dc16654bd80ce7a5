package anagram

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/wordjumble/jumble/lexicon"
)

type keypair struct {
	w1       string
	w2       string
	anagrams bool
}

var keyTests = []keypair{
	{"listen", "silent", true},
	{"listen", "enlist", true},
	{"camel", "macle", true},
	{"camel", "camels", false},
	{"tree", "teer", true},
	{"tree", "reet", true},
	{"tree", "tees", false},
	{"a", "a", true},
	{"ab", "ba", true},
	{"aab", "abb", false},
}

func TestKey(t *testing.T) {
	for _, tc := range keyTests {
		same := Key(tc.w1) == Key(tc.w2)
		if same != tc.anagrams {
			t.Errorf("Key(%q) vs Key(%q): same=%v, expected %v",
				tc.w1, tc.w2, same, tc.anagrams)
		}
	}
}

func TestKeySorted(t *testing.T) {
	is := is.New(t)
	is.Equal(Key("monkey"), "ekmnoy")
	is.Equal(Key("apple"), "aelpp")
}

func TestNewIndex(t *testing.T) {
	is := is.New(t)
	tokens := []string{"Listen", "camel", "silent", "x1x", "", "enlist"}
	idx := NewIndex(tokens, lexicon.LengthFilter{})

	is.Equal(len(idx), 2)
	// encounter order within a class is preserved
	is.Equal(idx[Key("listen")], []string{"listen", "silent", "enlist"})
	is.Equal(idx[Key("camel")], []string{"camel"})
}

func TestNewIndexLengthFilter(t *testing.T) {
	is := is.New(t)
	tokens := []string{"apple", "monkey", "applets", "mango"}
	idx := NewIndex(tokens, lexicon.MakeLengthFilter([]int{5, 6}, []int{5}))
	is.Equal(len(idx), 1)
	is.Equal(idx[Key("monkey")], []string{"monkey"})
}

func TestUniques(t *testing.T) {
	tokens := []string{"listen", "silent", "monkey", "camel", "macle", "zebra"}
	idx := NewIndex(tokens, lexicon.LengthFilter{})
	uniques := idx.Uniques()
	assert.Equal(t, []string{"monkey", "zebra"}, uniques)

	// every unique word's class has exactly one member
	for _, w := range uniques {
		assert.Len(t, idx[Key(w)], 1)
	}
}

func TestUniquesEmpty(t *testing.T) {
	is := is.New(t)
	idx := NewIndex([]string{"listen", "silent"}, lexicon.LengthFilter{})
	is.Equal(len(idx.Uniques()), 0)
}
