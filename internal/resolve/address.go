package resolve

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	streetPart = `\d{3,6}\s+[a-z0-9\s]+(?:dr|drive|st|street|blvd|boulevard|lane|ln|rd|road|parkway|pkwy|ave|avenue)`
	statePart  = `(?:ca|nd|tx|ga)`
	zipPart    = `\d{5}(?:-\d{4})?`
)

// Ordered; first match wins. Scanned labels frequently transpose the ZIP in
// front of the city line, so that layout gets its own pattern before the
// no-ZIP fallback.
var addressPatterns = []*regexp.Regexp{
	// street + city + state + ZIP
	regexp.MustCompile(streetPart + `\s+[a-z\s]+?\s+` + statePart + `\s+` + zipPart),
	// street + ZIP + city + state
	regexp.MustCompile(streetPart + `\s+` + zipPart + `\s+[a-z\s]+?\s+` + statePart + `\b`),
	// street + city + state, no ZIP
	regexp.MustCompile(streetPart + `\s+[a-z\s]+?\s+` + statePart + `\b`),
}

var (
	rePunctRun = regexp.MustCompile(`[.,]+`)
	reSpaceRun = regexp.MustCompile(`\s+`)
)

// ResolveAddress returns the model's claimed address verbatim when it is
// non-empty (trusted), otherwise falls back to pattern extraction over the
// raw, unnormalized OCR text.
func ResolveAddress(modelAddress, rawText string) string {
	if addr := strings.TrimSpace(modelAddress); addr != "" {
		return addr
	}
	return FallbackAddress(rawText)
}

// FallbackAddress extracts a US street address from raw OCR text: the text
// is lower-cased and comma/period runs are folded into spaces (labels
// delimit fields with commas; the patterns operate on space-separated
// tokens), then the ordered patterns are tried. The first match is
// title-cased and returned; no match returns "".
func FallbackAddress(rawText string) string {
	s := strings.ToLower(rawText)
	s = rePunctRun.ReplaceAllString(s, " ")
	s = reSpaceRun.ReplaceAllString(s, " ")

	for _, pat := range addressPatterns {
		if m := pat.FindString(s); m != "" {
			return cases.Title(language.English).String(m)
		}
	}
	return ""
}
