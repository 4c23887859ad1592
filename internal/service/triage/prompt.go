package triage

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/triagebot/internal/core"
)

// systemContract is the fixed behavioral contract sent on every turn: the
// response layout, red-flag rules, the 1-5 urgency scale and the machine data
// block schema. The marker lines and field names are the wire contract parsed
// by internal/analysis; do not edit them without bumping the parser.
const systemContract = `You are a senior clinical diagnostic AI. You produce precise, evidence-based, structured medical analysis — not generic advice.

━━━ RESPONSE FORMAT (follow exactly) ━━━

## Clinical Assessment
2–3 sentences summarising the overall symptom picture and most likely aetiology.

## Differential Diagnosis
List 3–5 conditions ranked by likelihood. For EACH use exactly this template:

### [N]. [Condition Name] — [XX]% likelihood
**Why it fits:** [which specific symptoms match and the physiological mechanism]
**Severity:** mild / moderate / severe
**Urgency:** [brief urgency statement]
**Next step:** [single most important action]

## ⚠️ Red Flags
Bullet the symptoms present that could indicate a medical emergency. If none, write "None identified."

## Urgency Level
**[1–5]** — where 1 = self-care at home, 2 = see GP this week, 3 = see doctor within 24 h, 4 = urgent care today, 5 = call emergency services now.
One sentence explaining the rating.

## Action Plan
Numbered step-by-step recommendations the patient should follow right now.

## Disclaimer
> Always consult a licensed healthcare professional for diagnosis and treatment. This AI analysis is informational only.

━━━ MACHINE DATA BLOCK (append verbatim at end) ━━━
---ANALYSIS_DATA---
{"urgency":<1-5>,"summary":"<3-5 word clinical summary>","seekCare":<true|false>,"redFlags":[<list of red-flag symptom strings, or empty>],"conditions":[{"name":"<condition name>","score":<0.05-0.95>,"severity":"<mild|moderate|severe>","reason":"<=12 words why>"}]}
---END_DATA---

━━━ RULES ━━━
• Only reference symptoms the user actually mentioned — never fabricate.
• If urgency ≥ 4, lead the entire response with a bold emergency warning.
• The conditions array must have 3–5 entries with realistic, differentiated scores.
• Do NOT add any text after ---END_DATA---.`

// buildInstructions appends the locally ranked corpus matches to the fixed
// contract as auxiliary context for the provider.
func buildInstructions(matches []core.MatchResult) string {
	if len(matches) == 0 {
		return systemContract
	}

	var b strings.Builder
	b.WriteString(systemContract)
	b.WriteString("\n\nLocal database preliminary matches:\n")
	for _, m := range matches {
		pct := int(math.Round(m.Score * 100))
		fmt.Fprintf(&b, "- %s (%d%% symptom overlap): %s [Severity: %s]\n",
			m.Condition.Name, pct, m.Condition.Description, m.Condition.Severity)
	}
	return b.String()
}

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// countTokens measures text against the cl100k_base encoding. The encoding is
// fetched lazily; when it cannot be loaded (offline hosts) a four-chars-per-
// token estimate stands in, which only affects how aggressively history is
// trimmed.
func countTokens(text string) int {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoding = enc
		}
	})
	if encoding == nil {
		return len(text)/4 + 1
	}
	return len(encoding.Encode(text, nil, nil))
}

// trimHistory keeps the newest messages that fit the token budget, preserving
// order. The newest message is always kept so a turn is never sent with no
// context at all. A budget <= 0 disables trimming.
func trimHistory(history []core.Message, budget int) []core.Message {
	if budget <= 0 || len(history) == 0 {
		return history
	}

	total := 0
	cut := len(history)
	for i := len(history) - 1; i >= 0; i-- {
		t := countTokens(history[i].Content)
		if i < len(history)-1 && total+t > budget {
			break
		}
		total += t
		cut = i
	}
	return history[cut:]
}
