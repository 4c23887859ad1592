// Package match implements the local symptom-matching engine: a tokenizer for
// free-text symptom input and a fuzzy ranker over the static condition corpus.
// Everything here is pure and safe for concurrent use.
package match

import "strings"

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || r == '.' || r == '\n'
}

// Normalize splits raw user text into comparable symptom phrases: split on
// comma, semicolon, period and newline, trim, lower-case, drop empties.
// First-seen order is preserved and phrases are not deduplicated; collapsing
// near-duplicates is the matcher's job.
func Normalize(raw string) []string {
	fragments := strings.FieldsFunc(raw, isSeparator)
	phrases := make([]string, 0, len(fragments))
	for _, f := range fragments {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		phrases = append(phrases, f)
	}
	return phrases
}
