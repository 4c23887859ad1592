package match

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"fever", "fevers", 1},
		{"headache", "headachy", 1},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.expected {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
		// distance is symmetric
		if got := levenshtein(tt.b, tt.a); got != tt.expected {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.b, tt.a, got, tt.expected)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b     string
		expected float64
	}{
		{"", "", 1.0},
		{"abc", "abc", 1.0},
		{"abcd", "", 0.0},
		{"fevers", "fever", 5.0 / 6.0},
	}

	for _, tt := range tests {
		if got := similarity(tt.a, tt.b); got != tt.expected {
			t.Errorf("similarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestSimilarity_ThresholdBehavior(t *testing.T) {
	// "headache" vs "headachy": distance 1, longest 8 -> 0.875 > 0.75
	if s := similarity("headache", "headachy"); s <= similarityThreshold {
		t.Errorf("expected similarity above threshold, got %f", s)
	}
	// "fever" vs "cough": completely different, far below threshold
	if s := similarity("fever", "cough"); s > similarityThreshold {
		t.Errorf("expected similarity below threshold, got %f", s)
	}
}
