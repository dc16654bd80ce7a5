package lexicon

import "strings"

// LengthFilter restricts word eligibility by length. Both sets may be empty,
// in which case no length restriction applies. A length passes when it is in
// Allow (if Allow is non-empty) and not in Deny (if Deny is non-empty); the
// two sets are independent.
type LengthFilter struct {
	Allow map[int]bool
	Deny  map[int]bool
}

// MakeLengthFilter builds a LengthFilter from slices of lengths.
func MakeLengthFilter(allow, deny []int) LengthFilter {
	lf := LengthFilter{}
	if len(allow) > 0 {
		lf.Allow = make(map[int]bool)
		for _, n := range allow {
			lf.Allow[n] = true
		}
	}
	if len(deny) > 0 {
		lf.Deny = make(map[int]bool)
		for _, n := range deny {
			lf.Deny[n] = true
		}
	}
	return lf
}

// Normalize lowercases and trims a raw token. All case handling happens
// here, at ingestion; every other package assumes already-normalized words.
func Normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

func alphabetic(word string) bool {
	if len(word) == 0 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

// Accept reports whether a raw token is an eligible word: non-empty, purely
// a-z after normalization, and passing the length filter. Pure predicate,
// no side effects.
func Accept(token string, lf LengthFilter) bool {
	word := Normalize(token)
	if !alphabetic(word) {
		return false
	}
	if len(lf.Allow) > 0 && !lf.Allow[len(word)] {
		return false
	}
	if len(lf.Deny) > 0 && lf.Deny[len(word)] {
		return false
	}
	return true
}
