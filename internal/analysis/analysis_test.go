package analysis

import (
	"testing"

	"github.com/sandevgo/triagebot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis() *core.Analysis {
	return &core.Analysis{
		Urgency:  2,
		Summary:  "likely viral URI",
		SeekCare: false,
		RedFlags: []string{},
		Conditions: []core.ConditionScore{
			{Name: "Common Cold", Score: 0.72, Severity: core.SeverityMild, Reason: "classic congestion and mild fever"},
			{Name: "Influenza (Flu)", Score: 0.41, Severity: core.SeverityModerate, Reason: "fever with fatigue"},
			{Name: "COVID-19", Score: 0.2, Severity: core.SeverityModerate, Reason: "overlapping respiratory picture"},
		},
	}
}

func TestParse_RoundTrip(t *testing.T) {
	want := sampleAnalysis()
	prose := "## Clinical Assessment\nLooks like a common cold.\n\n## Action Plan\n1. Rest."

	raw, err := Encode(prose, want)
	require.NoError(t, err)

	clean, got := Parse(raw)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
	assert.Equal(t, prose, clean)
	assert.NotContains(t, clean, StartMarker)
	assert.NotContains(t, clean, EndMarker)
}

func TestParse_NoMarkers(t *testing.T) {
	text := "Just some prose without any data block."
	clean, got := Parse(text)
	assert.Nil(t, got)
	assert.Equal(t, text, clean)
}

func TestParse_StartMarkerOnly(t *testing.T) {
	text := "prose\n" + StartMarker + "\n{\"urgency\":2}"
	clean, got := Parse(text)
	assert.Nil(t, got)
	assert.Equal(t, text, clean)
}

func TestParse_MalformedPayload(t *testing.T) {
	text := "prose\n" + StartMarker + "\n{not json at all\n" + EndMarker
	clean, got := Parse(text)
	assert.Nil(t, got, "malformed payload must be treated as absent")
	assert.Equal(t, text, clean, "unparsable block must never be partially stripped")
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *core.Analysis)
	}{
		{"urgency too low", func(a *core.Analysis) { a.Urgency = 0 }},
		{"urgency too high", func(a *core.Analysis) { a.Urgency = 6 }},
		{"too few conditions", func(a *core.Analysis) { a.Conditions = a.Conditions[:2] }},
		{"condition score zero", func(a *core.Analysis) { a.Conditions[0].Score = 0 }},
		{"condition score one", func(a *core.Analysis) { a.Conditions[0].Score = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sampleAnalysis()
			tt.mutate(a)
			raw, err := Encode("prose", a)
			require.NoError(t, err)

			clean, got := Parse(raw)
			assert.Nil(t, got)
			assert.Equal(t, raw, clean)
		})
	}
}

func TestParse_TrimsSurroundingWhitespace(t *testing.T) {
	raw, err := Encode("Some assessment text.", sampleAnalysis())
	require.NoError(t, err)
	raw += "\n\n   \n"

	clean, got := Parse(raw)
	require.NotNil(t, got)
	assert.Equal(t, "Some assessment text.", clean)
}

func TestParse_EmptyRedFlagsSurvive(t *testing.T) {
	a := sampleAnalysis()
	a.RedFlags = []string{}
	raw, err := Encode("p", a)
	require.NoError(t, err)

	_, got := Parse(raw)
	require.NotNil(t, got)
	assert.Empty(t, got.RedFlags)
}

func TestParse_PicksFirstMarkerPair(t *testing.T) {
	want := sampleAnalysis()
	raw, err := Encode("prose", want)
	require.NoError(t, err)

	// A second, garbage block after the first must not confuse the parser.
	raw += "\n" + StartMarker + "\ngarbage\n" + EndMarker

	clean, got := Parse(raw)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
	assert.Contains(t, clean, "garbage")
}
