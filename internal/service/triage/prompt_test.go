package triage

import (
	"strings"
	"testing"

	"github.com/sandevgo/triagebot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInstructions_NoMatches(t *testing.T) {
	assert.Equal(t, systemContract, buildInstructions(nil))
}

func TestBuildInstructions_AppendsMatches(t *testing.T) {
	matches := []core.MatchResult{
		{
			Condition: &core.Condition{
				Name:        "Common Cold",
				Description: "A viral infection of the upper respiratory tract.",
				Severity:    core.SeverityMild,
			},
			Score: 0.667,
		},
		{
			Condition: &core.Condition{
				Name:        "Influenza (Flu)",
				Description: "A contagious respiratory illness.",
				Severity:    core.SeverityModerate,
			},
			Score: 0.333,
		},
	}

	got := buildInstructions(matches)
	assert.True(t, strings.HasPrefix(got, systemContract))
	assert.Contains(t, got, "Local database preliminary matches:")
	assert.Contains(t, got, "- Common Cold (67% symptom overlap)")
	assert.Contains(t, got, "- Influenza (Flu) (33% symptom overlap)")
	assert.Contains(t, got, "[Severity: moderate]")
}

func msg(role, content string) core.Message {
	return core.Message{Role: role, Content: content}
}

func TestTrimHistory_DisabledBudget(t *testing.T) {
	history := []core.Message{
		msg(core.RoleUser, strings.Repeat("a", 10000)),
		msg(core.RoleAssistant, strings.Repeat("b", 10000)),
	}
	assert.Len(t, trimHistory(history, 0), 2)
	assert.Len(t, trimHistory(history, -1), 2)
}

func TestTrimHistory_GenerousBudgetKeepsAll(t *testing.T) {
	history := []core.Message{
		msg(core.RoleUser, "fever"),
		msg(core.RoleAssistant, "likely a cold"),
		msg(core.RoleUser, "it got worse"),
	}
	got := trimHistory(history, 100000)
	require.Len(t, got, 3)
	assert.Equal(t, history, got)
}

func TestTrimHistory_DropsOldestFirst(t *testing.T) {
	big := strings.Repeat("word ", 2000)
	history := []core.Message{
		msg(core.RoleUser, big),
		msg(core.RoleAssistant, "short reply"),
		msg(core.RoleUser, "short question"),
	}

	budget := countTokens("short reply") + countTokens("short question")
	got := trimHistory(history, budget)
	require.Len(t, got, 2)
	assert.Equal(t, "short reply", got[0].Content)
	assert.Equal(t, "short question", got[1].Content)
}

func TestTrimHistory_NewestAlwaysSurvives(t *testing.T) {
	history := []core.Message{
		msg(core.RoleUser, "old"),
		msg(core.RoleAssistant, strings.Repeat("huge ", 5000)),
	}
	got := trimHistory(history, 1)
	require.Len(t, got, 1)
	assert.Equal(t, history[1].Content, got[0].Content)
}

func TestTrimHistory_Empty(t *testing.T) {
	assert.Empty(t, trimHistory(nil, 100))
}
