package match

import (
	"sort"
	"strings"

	"github.com/sandevgo/triagebot/internal/core"
)

const (
	// minScore filters out conditions with negligible symptom overlap.
	minScore = 0.1
	// maxResults caps the ranked output.
	maxResults = 5
	// similarityThreshold is the normalized edit-distance cutoff for treating
	// two phrases as the same symptom.
	similarityThreshold = 0.75
)

// Match scores every corpus condition against the normalized input phrases
// and returns the ranked results: score > 0.1, descending, stable on ties
// (corpus order preserved), at most 5 entries.
//
// An input phrase matches a canonical phrase on substring containment in
// either direction, or on Levenshtein similarity above the threshold. The
// first canonical phrase that matches settles that input phrase for the
// condition.
func Match(symptoms []string, corpus []core.Condition) []core.MatchResult {
	if len(symptoms) == 0 {
		return nil
	}

	results := make([]core.MatchResult, 0, len(corpus))
	for i := range corpus {
		cond := &corpus[i]

		matchCount := 0
		for _, input := range symptoms {
			for _, candidate := range cond.Symptoms {
				if phraseMatches(input, candidate) {
					matchCount++
					break
				}
			}
		}

		score := float64(matchCount) / float64(len(symptoms))
		if score > minScore {
			results = append(results, core.MatchResult{Condition: cond, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

func phraseMatches(input, candidate string) bool {
	if strings.Contains(candidate, input) || strings.Contains(input, candidate) {
		return true
	}
	return similarity(input, candidate) > similarityThreshold
}
