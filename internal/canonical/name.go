// Package canonical provides product name canonicalization and fuzzy
// name similarity for cross-source entity resolution.
package canonical

import (
	"regexp"
	"strings"
)

// MaxNameLength is the upper bound on a canonical product name.
const MaxNameLength = 100

// MinNameLength is the shortest canonical name considered usable as a
// deduplication key. Shorter results are treated as degenerate.
const MinNameLength = 3

// SimilarityThreshold is the Jaccard similarity above which two names
// are considered to refer to the same product. The comparison is strict
// (> not >=).
const SimilarityThreshold = 0.6

// marketingPrefixes are leading hype tokens stripped from listing titles.
var marketingPrefixes = map[string]bool{
	"new":          true,
	"hot":          true,
	"best":         true,
	"top":          true,
	"premium":      true,
	"professional": true,
}

// packagingSuffixes are trailing packaging-unit tokens stripped from
// listing titles.
var packagingSuffixes = map[string]bool{
	"set":    true,
	"kit":    true,
	"pack":   true,
	"bundle": true,
	"piece":  true,
	"pcs":    true,
}

var (
	// nonWordPattern matches everything except word characters,
	// whitespace, and hyphen.
	nonWordPattern = regexp.MustCompile(`[^\w\s-]`)

	// quantityPattern matches quantity phrases such as "10 pcs" or
	// "2 pack" that carry no identity information.
	quantityPattern = regexp.MustCompile(`(?i)\b\d+\s*(pcs?|pieces?|set|pack)\b`)
)

// Canonicalize cleans a free-text product name into its canonical
// deduplication-key form: punctuation removed, quantity phrases and
// marketing/packaging tokens stripped, whitespace collapsed, and the
// result truncated to MaxNameLength runes.
//
// The function is pure, deterministic, and idempotent: applying it to
// its own output returns the same string.
func Canonicalize(raw string) string {
	s := raw
	// Each pass only ever shrinks the input, so the fixpoint loop
	// terminates quickly; truncation can expose a new strippable
	// token, which the next pass handles.
	for i := 0; i < 8; i++ {
		next := cleanOnce(s)
		if next == s {
			return s
		}
		s = next
	}
	return s
}

// cleanOnce applies a single full cleaning pass.
func cleanOnce(s string) string {
	s = nonWordPattern.ReplaceAllString(s, " ")
	s = quantityPattern.ReplaceAllString(s, "")

	fields := strings.Fields(s)
	fields = stripEdgeTokens(fields)

	s = strings.Join(fields, " ")
	return truncate(s, MaxNameLength)
}

// stripEdgeTokens removes marketing prefixes and packaging suffixes.
// A lone token is never stripped; the stripped token must be followed
// (or preceded) by at least one other token.
func stripEdgeTokens(fields []string) []string {
	for len(fields) > 1 && marketingPrefixes[strings.ToLower(fields[0])] {
		fields = fields[1:]
	}
	for len(fields) > 1 && packagingSuffixes[strings.ToLower(fields[len(fields)-1])] {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// truncate limits s to at most n runes and trims trailing whitespace
// left over from the cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		s = string(runes[:n])
	}
	return strings.TrimSpace(s)
}

// Degenerate reports whether a canonical name is too short to serve as
// an entity key. Degenerate names are dropped from resolution rather
// than treated as errors.
func Degenerate(name string) bool {
	return len(name) < MinNameLength
}

// tokens splits a name into its set of lowercase whitespace-separated
// tokens.
func tokens(name string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(name)) {
		set[tok] = true
	}
	return set
}

// Jaccard computes the Jaccard similarity |A∩B|/|A∪B| between the token
// sets of two names. Two empty token sets yield 0 rather than a
// division by zero.
func Jaccard(a, b string) float64 {
	setA := tokens(a)
	setB := tokens(b)

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Similar reports whether two product names refer to the same product,
// using token-set Jaccard similarity against SimilarityThreshold. The
// test is symmetric; empty names are never similar to anything.
func Similar(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return Jaccard(a, b) > SimilarityThreshold
}
