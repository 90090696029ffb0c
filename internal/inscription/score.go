package inscription

import (
	"strings"

	"github.com/arbovm/levenshtein"
)

// Similarity returns an edit-distance similarity in [0, 1] between two
// strings, case-insensitive. 1 means identical, 0 means nothing in common.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" && b == "" {
		return 0
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	dist := levenshtein.Distance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// MatchScore scores how well a legend corroborates a resolved field value.
// Legends are fragmented by OCR, so the target is compared against the whole
// legend and against each token, and the best score wins.
func MatchScore(legend, target string) float64 {
	target = strings.TrimSpace(target)
	if legend == "" || target == "" {
		return 0
	}
	best := Similarity(legend, target)
	for _, token := range strings.Fields(legend) {
		if s := Similarity(token, target); s > best {
			best = s
		}
	}
	return best
}
