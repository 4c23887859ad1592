package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitHTML_ShortTextSingleChunk(t *testing.T) {
	chunks := splitHTML("hello", 100)
	assert.Equal(t, []string{"hello"}, chunks)
}

func TestSplitHTML_PrefersNewlineBoundary(t *testing.T) {
	text := strings.Repeat("a", 60) + "\n" + strings.Repeat("b", 60)
	chunks := splitHTML(text, 100)
	require.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 60), chunks[0])
	assert.Equal(t, strings.Repeat("b", 60), chunks[1])
}

func TestSplitHTML_HardCutWithoutNewlines(t *testing.T) {
	text := strings.Repeat("x", 250)
	chunks := splitHTML(text, 100)
	require.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 100)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitHTML_IgnoresEarlyNewline(t *testing.T) {
	// A newline in the first third should not produce a tiny chunk
	text := strings.Repeat("a", 10) + "\n" + strings.Repeat("b", 200)
	chunks := splitHTML(text, 100)
	require.NotEmpty(t, chunks)
	assert.Equal(t, 100, len(chunks[0]))
}

func TestSplitHTML_ReassemblesAllContent(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString(strings.Repeat("line content ", 10))
		b.WriteString("\n")
	}
	text := b.String()

	joined := strings.Join(splitHTML(text, 400), "\n")
	assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(strings.Fields(joined), " "))
}
