package llm

import (
	"encoding/json"
	"strings"
)

// ParseCandidate locates a JSON object embedded anywhere in a model reply
// and decodes it into LabelFields. The span runs from the first '{' to the
// last '}' across the whole text, newlines included, so prose before and
// after the object is tolerated.
//
// This stage never fails: no span, malformed JSON, or a span that does not
// match the label schema all yield an empty candidate, which downstream
// treats the same as "model returned empty fields". Missing keys default
// to empty strings.
func ParseCandidate(resp string) LabelFields {
	start := strings.Index(resp, "{")
	end := strings.LastIndex(resp, "}")
	if start < 0 || end <= start {
		return LabelFields{}
	}
	span := []byte(resp[start : end+1])

	// Validation doubles as the malformed-JSON check: unparseable spans and
	// non-string field values are both discarded here.
	if err := ValidateJSONAgainstSchema(BuildLabelJSONSchema(), span); err != nil {
		return LabelFields{}
	}

	var fields LabelFields
	if err := json.Unmarshal(span, &fields); err != nil {
		return LabelFields{}
	}
	fields.RecipientName = strings.TrimSpace(fields.RecipientName)
	fields.RecipientAddress = strings.TrimSpace(fields.RecipientAddress)
	return fields
}
