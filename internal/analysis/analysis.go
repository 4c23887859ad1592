// Package analysis implements the structured-response protocol: a single
// marker-delimited JSON block appended to the provider's prose reply. The
// markers and field schema are a fixed wire contract; changing either requires
// a parser version bump.
package analysis

import (
	"encoding/json"
	"strings"

	"github.com/sandevgo/triagebot/internal/core"
)

const (
	StartMarker = "---ANALYSIS_DATA---"
	EndMarker   = "---END_DATA---"
)

// Parse locates the first marker pair in the raw response text and decodes
// the enclosed payload. On success it returns the text with the block
// (markers inclusive) removed and trimmed, plus the decoded analysis.
//
// If the markers are absent, the payload fails to decode, or the decoded
// object violates the schema, the analysis is treated as absent and the input
// is returned untouched. An unparsable block is never partially stripped.
func Parse(text string) (string, *core.Analysis) {
	start := strings.Index(text, StartMarker)
	if start < 0 {
		return text, nil
	}
	rest := text[start+len(StartMarker):]
	end := strings.Index(rest, EndMarker)
	if end < 0 {
		return text, nil
	}

	payload := strings.TrimSpace(rest[:end])

	var a core.Analysis
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return text, nil
	}
	if !valid(&a) {
		return text, nil
	}

	clean := text[:start] + rest[end+len(EndMarker):]
	return strings.TrimSpace(clean), &a
}

// Encode renders prose plus a marker-wrapped analysis block in the exact
// layout Parse expects. Used by the provider contract tests; Parse(Encode(p,
// a)) recovers both inputs.
func Encode(prose string, a *core.Analysis) (string, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if prose != "" {
		b.WriteString(prose)
		b.WriteString("\n\n")
	}
	b.WriteString(StartMarker)
	b.WriteString("\n")
	b.Write(payload)
	b.WriteString("\n")
	b.WriteString(EndMarker)
	return b.String(), nil
}

// valid enforces the schema invariants: urgency on the 1-5 scale, 3-5 ranked
// conditions, every condition score strictly inside (0,1).
func valid(a *core.Analysis) bool {
	if a.Urgency < 1 || a.Urgency > 5 {
		return false
	}
	if len(a.Conditions) < 3 || len(a.Conditions) > 5 {
		return false
	}
	for _, c := range a.Conditions {
		if c.Score <= 0 || c.Score >= 1 {
			return false
		}
	}
	return true
}
