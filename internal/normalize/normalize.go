// Package normalize strips scanner noise from raw label text before it is
// handed to the generation backend.
package normalize

import (
	"regexp"
	"strings"
)

var (
	reWeight     = regexp.MustCompile(`\b\d+(\.\d+)?\s?lbs\b`)
	reLongDigits = regexp.MustCompile(`\b\d{10,}\b`)
	reCountry    = regexp.MustCompile(`\b(united states|usa)\b`)
	reStopwords  = regexp.MustCompile(`\b(priority|ground|tracking|fedex|ups|usps|billing|sender|postage)\b`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Clean lower-cases raw OCR text and removes weight tokens, long numeric
// runs (tracking-number-like), country tokens, and carrier/billing
// stopwords, then collapses whitespace. It never fails; the result may be
// empty.
func Clean(text string) string {
	s := strings.ToLower(text)
	s = reWeight.ReplaceAllString(s, "")
	s = reLongDigits.ReplaceAllString(s, "")
	s = reCountry.ReplaceAllString(s, "")
	s = reStopwords.ReplaceAllString(s, "")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
