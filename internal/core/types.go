package core

import "time"

const (
	TriageName          = "TriageBot"
	TriageUserAgent     = "TriageBot/0.1"
	TriageRepositoryURL = "https://github.com/sandevgo/triagebot"
	TriageVersion       = "0.1.0"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Severity is the coarse risk tier assigned to a corpus condition.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Condition is one entry of the static reference corpus. Instances live for
// the whole process and must never be mutated.
type Condition struct {
	Name            string   `json:"name"`
	Symptoms        []string `json:"symptoms"`
	Description     string   `json:"description"`
	Severity        Severity `json:"severity"`
	Recommendations []string `json:"recommendations"`
}

// MatchResult pairs a corpus condition with the fraction of input symptom
// phrases it matched. The Condition pointer references the shared corpus.
type MatchResult struct {
	Condition *Condition `json:"condition"`
	Score     float64    `json:"score"`
}

// Session is one persistent conversation.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is a single conversation turn half. Assistant content is stored
// verbatim, including the embedded analysis block; the block is re-derived on
// read and never stripped on write.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ConditionScore is one ranked entry of an assistant analysis block.
type ConditionScore struct {
	Name     string   `json:"name"`
	Score    float64  `json:"score"`
	Severity Severity `json:"severity"`
	Reason   string   `json:"reason"`
}

// Analysis is the machine-readable payload the completion provider appends to
// its prose reply. It is embedded in Message.Content and re-parsed on demand,
// never persisted separately.
type Analysis struct {
	Urgency    int              `json:"urgency"`
	Summary    string           `json:"summary"`
	SeekCare   bool             `json:"seekCare"`
	RedFlags   []string         `json:"redFlags"`
	Conditions []ConditionScore `json:"conditions"`
}

// TurnResult is what one completed chat turn hands back to the transport.
type TurnResult struct {
	SessionID string        `json:"session_id"`
	Reply     string        `json:"reply"`
	Analysis  *Analysis     `json:"analysis,omitempty"`
	Matches   []MatchResult `json:"local_matches"`
}
