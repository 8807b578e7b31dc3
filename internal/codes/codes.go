// Package codes resolves abbreviated register codes to friendly item names.
//
// Receipts abbreviate item names aggressively ("KS SEAWEED", "CHKN POTSTIK")
// and OCR mangles them further, so lookups are fuzzy: a code resolves to the
// entry whose key is closest by edit distance, as long as the similarity
// clears a cutoff.
package codes

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultCutoff is the similarity a lookup must reach to count as a match.
// Similarity is 1 minus the edit distance over the longer string's length,
// so 1 requires an exact match and 0 matches anything.
const DefaultCutoff = 0.6

// Dictionary maps register codes to friendly item names with fuzzy lookup.
type Dictionary struct {
	entries map[string]string
	cutoff  float64
}

// New builds a Dictionary over entries with the given similarity cutoff.
// Keys are matched case-insensitively.
func New(entries map[string]string, cutoff float64) *Dictionary {
	normalized := make(map[string]string, len(entries))
	for code, name := range entries {
		normalized[normalize(code)] = name
	}
	return &Dictionary{entries: normalized, cutoff: cutoff}
}

// Default returns a Dictionary over the built-in Costco code table with the
// default cutoff.
func Default() *Dictionary {
	return New(Costco, DefaultCutoff)
}

// Lookup resolves code to a friendly item name. It reports false when no
// entry clears the similarity cutoff. Ties break toward the
// lexicographically smaller key so results are deterministic.
func (d *Dictionary) Lookup(code string) (string, bool) {
	code = normalize(code)

	var (
		bestKey   string
		bestScore float64 = -1
	)
	for key := range d.entries {
		score := similarity(code, key)
		if score > bestScore || (score == bestScore && key < bestKey) {
			bestKey, bestScore = key, score
		}
	}

	if bestScore < d.cutoff {
		return "", false
	}
	return d.entries[bestKey], true
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// similarity maps edit distance into [0, 1], with 1 meaning identical.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
