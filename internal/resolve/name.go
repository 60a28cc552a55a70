// Package resolve derives the final recipient name and delivery address
// from model output and raw scan text, using deterministic rule-based
// matching so the pipeline degrades gracefully when the model under- or
// over-produces.
package resolve

import (
	"regexp"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/parcelworks/labelextract/internal/recipients"
)

// DefaultNameThreshold is the minimum similarity score for a bigram to be
// accepted as a known recipient.
const DefaultNameThreshold = 0.75

var reNameWord = regexp.MustCompile(`[a-z]{3,}`)

// NameResolver fuzzy-matches candidate bigrams against the closed
// whitelist of known recipients. It never returns a string outside the
// whitelist: the output is a canonical whitelist entry or "".
type NameResolver struct {
	whitelist *recipients.Whitelist
	threshold float64
	params    *levenshtein.Params
}

func NewNameResolver(w *recipients.Whitelist, threshold float64) *NameResolver {
	if threshold <= 0 {
		threshold = DefaultNameThreshold
	}
	return &NameResolver{
		whitelist: w,
		threshold: threshold,
		params:    levenshtein.NewParams(),
	}
}

// Resolve tokenizes text into lowercase alphabetic words of length >= 3,
// forms every consecutive two-word bigram, and scores each bigram against
// each known recipient with a normalized edit-similarity in [0,1]. The best
// pair wins if it reaches the threshold.
//
// The scan is strict-greater, left-to-right bigrams then whitelist order,
// so exact ties go to the first pair reaching the maximum. O(W*R) over
// small W and R; label text and the whitelist are both short.
func (r *NameResolver) Resolve(text string) string {
	words := reNameWord.FindAllString(strings.ToLower(text), -1)

	bestName := ""
	bestScore := 0.0
	for i := 0; i+1 < len(words); i++ {
		cand := words[i] + " " + words[i+1]
		for _, known := range r.whitelist.Names() {
			score := levenshtein.Similarity(cand, strings.ToLower(known), r.params)
			if score > bestScore {
				bestScore = score
				bestName = known
			}
		}
	}
	if bestScore >= r.threshold {
		return bestName
	}
	return ""
}
