package domain

import (
	"regexp"
	"strings"
)

// Pair is a market pair in "BASE/QUOTE" form, e.g. "BTC/ZAR".
type Pair string

var pairRe = regexp.MustCompile(`^[A-Z0-9]{2,10}/[A-Z0-9]{2,10}$`)

// ValidatePair reports whether p is a well-formed market pair with distinct
// base and quote symbols.
func ValidatePair(p string) bool {
	if !pairRe.MatchString(p) {
		return false
	}
	base, quote, _ := SplitPair(p)
	return base != quote
}

// SplitPair splits "BASE/QUOTE" into its symbols. ok is false when the
// separator is missing, duplicated, or either token is empty. Market data is
// untrusted external input refreshed on a timer, so callers skip records
// rather than fail on !ok.
func SplitPair(p string) (base, quote string, ok bool) {
	if strings.Count(p, "/") != 1 {
		return "", "", false
	}
	base, quote, _ = strings.Cut(p, "/")
	if base == "" || quote == "" {
		return "", "", false
	}
	return base, quote, true
}

// MakePair joins two symbols into the canonical pair string.
func MakePair(base, quote string) Pair {
	return Pair(base + "/" + quote)
}
