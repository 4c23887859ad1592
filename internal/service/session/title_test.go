package session

import "testing"

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "symptoms prefix",
			input:    "symptoms: Fever, Headache, cough",
			expected: "Fever, Headache, Cough",
		},
		{
			name:     "singular prefix",
			input:    "symptom: sore throat",
			expected: "Sore throat",
		},
		{
			name:     "case insensitive prefix",
			input:    "SYMPTOMS: chills; body aches",
			expected: "Chills, Body aches",
		},
		{
			name:     "caps at four terms",
			input:    "symptoms: one, two, three, four, five, six",
			expected: "One, Two, Three, Four",
		},
		{
			name:     "no prefix falls back to raw message",
			input:    "I have been feeling dizzy since yesterday",
			expected: "I have been feeling dizzy since yesterday",
		},
		{
			name:     "long message truncated to 60 chars",
			input:    "aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeeeeffffffffffgggggggggg",
			expected: "aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeeeeffffffffff",
		},
		{
			name:     "empty message",
			input:    "   ",
			expected: "",
		},
		{
			name:     "prefix with only separators falls back",
			input:    "symptoms: ,,;",
			expected: "symptoms: ,,;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveTitle(tt.input); got != tt.expected {
				t.Errorf("DeriveTitle(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
