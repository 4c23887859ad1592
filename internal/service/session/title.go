package session

import (
	"regexp"
	"strings"
)

const (
	maxTitleTerms    = 4
	fallbackTitleLen = 60
)

var (
	symptomsPrefix = regexp.MustCompile(`(?i)symptoms?[:\s]+(.+)`)
	termSeparator  = regexp.MustCompile(`[,;]+`)
)

// DeriveTitle builds a session title from the opening user message. Messages
// of the form "symptoms: fever, headache" become "Fever, Headache" (up to
// four terms, each capitalized); anything else is cut to the first 60
// characters.
func DeriveTitle(message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return ""
	}

	if m := symptomsPrefix.FindStringSubmatch(message); m != nil {
		terms := splitTerms(m[1])
		if len(terms) > 0 {
			return strings.Join(terms, ", ")
		}
	}

	runes := []rune(message)
	if len(runes) > fallbackTitleLen {
		return string(runes[:fallbackTitleLen])
	}
	return message
}

func splitTerms(raw string) []string {
	parts := termSeparator.Split(raw, -1)
	terms := make([]string, 0, maxTitleTerms)
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		terms = append(terms, capitalize(p))
		if len(terms) == maxTitleTerms {
			break
		}
	}
	return terms
}

func capitalize(s string) string {
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
