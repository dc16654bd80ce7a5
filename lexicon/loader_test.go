package lexicon

import (
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestLoad(t *testing.T) {
	is := is.New(t)
	src := "Apple\n\nmonkey\n123\nmother-in-law\nMANGO\n"
	words, err := Load(strings.NewReader(src), LengthFilter{})
	is.NoErr(err)
	is.Equal(words, []string{"apple", "monkey", "mango"})
}

func TestLoadAppliesLengthFilter(t *testing.T) {
	is := is.New(t)
	src := "apple\nmonkey\napplet\nmango\n"
	words, err := Load(strings.NewReader(src), MakeLengthFilter([]int{6}, nil))
	is.NoErr(err)
	is.Equal(words, []string{"monkey", "applet"})
}

func TestLoadFileMissing(t *testing.T) {
	is := is.New(t)
	_, err := LoadFile("/nonexistent/word/list.txt", LengthFilter{})
	is.True(err != nil)
}

func TestLoadFileRoundTrip(t *testing.T) {
	is := is.New(t)
	path := t.TempDir() + "/words.txt"
	err := os.WriteFile(path, []byte("camel\nlabel\n"), 0600)
	is.NoErr(err)
	words, err := LoadFile(path, LengthFilter{})
	is.NoErr(err)
	is.Equal(words, []string{"camel", "label"})
}
