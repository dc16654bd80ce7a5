package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// Load tokenizes a word list, one token per line, keeping only eligible
// words in encounter order. Blank lines and ineligible tokens are skipped,
// not errored.
func Load(r io.Reader, lf LengthFilter) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	for scanner.Scan() {
		token := scanner.Text()
		if !Accept(token, lf) {
			continue
		}
		words = append(words, Normalize(token))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

// LoadFile loads a word list from a file on disk. An unreadable file is a
// fatal condition for the caller's operation; there is no retry here.
func LoadFile(path string, lf LengthFilter) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	words, err := Load(f, lf)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("words", len(words)).Msg("loaded word list")
	return words, nil
}
