package triage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/triagebot/internal/analysis"
	"github.com/sandevgo/triagebot/internal/core"
	"github.com/sandevgo/triagebot/internal/corpus"
	"github.com/sandevgo/triagebot/internal/service/session"
	"github.com/sandevgo/triagebot/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter records what it was asked and replies with a canned response.
type fakeCompleter struct {
	reply        string
	err          error
	instructions string
	history      []core.Message
	userText     string
	calls        int
}

func (f *fakeCompleter) Complete(ctx context.Context, instructions string, history []core.Message, userText string) (string, error) {
	f.calls++
	f.instructions = instructions
	f.history = history
	f.userText = userText
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func validReply(t *testing.T, prose string) string {
	t.Helper()
	raw, err := analysis.Encode(prose, &core.Analysis{
		Urgency:  2,
		Summary:  "viral infection likely",
		SeekCare: false,
		RedFlags: []string{},
		Conditions: []core.ConditionScore{
			{Name: "Common Cold", Score: 0.7, Severity: core.SeverityMild, Reason: "congestion pattern"},
			{Name: "Influenza (Flu)", Score: 0.4, Severity: core.SeverityModerate, Reason: "fever"},
			{Name: "COVID-19", Score: 0.2, Severity: core.SeverityModerate, Reason: "respiratory overlap"},
		},
	})
	require.NoError(t, err)
	return raw
}

func newTestService(t *testing.T, completer core.Completer) (*Service, *session.Manager) {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.NewDB(ctx, filepath.Join(t.TempDir(), "triagebot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sessions := session.NewManager(sqlite.NewSessionRepo(db))
	svc := NewService(Config{CompletionTimeout: 5 * time.Second}, sessions, completer, corpus.All())
	return svc, sessions
}

func TestTurn_RejectsBlankInput(t *testing.T) {
	completer := &fakeCompleter{}
	svc, _ := newTestService(t, completer)

	_, err := svc.Turn(context.Background(), "", "   \n ")
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Zero(t, completer.calls, "no external call may happen for rejected input")
}

func TestTurn_FullPipeline(t *testing.T) {
	completer := &fakeCompleter{reply: validReply(t, "## Clinical Assessment\nLikely a cold.")}
	svc, sessions := newTestService(t, completer)
	ctx := context.Background()

	result, err := svc.Turn(ctx, "", "symptoms: fever, cough, fatigue")
	require.NoError(t, err)

	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "## Clinical Assessment\nLikely a cold.", result.Reply)
	require.NotNil(t, result.Analysis)
	assert.Equal(t, 2, result.Analysis.Urgency)
	assert.NotEmpty(t, result.Matches)

	// Local matches are threaded into the instruction payload
	assert.Contains(t, completer.instructions, "Local database preliminary matches")
	assert.Contains(t, completer.instructions, "Common Cold")
	assert.Equal(t, "symptoms: fever, cough, fatigue", completer.userText)
	assert.Empty(t, completer.history, "first turn has no prior history")

	// Both turns persisted; assistant content stored raw, block included
	messages, err := sessions.Messages(ctx, result.SessionID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, core.RoleUser, messages[0].Role)
	assert.Equal(t, core.RoleAssistant, messages[1].Role)
	assert.Contains(t, messages[1].Content, analysis.StartMarker)

	// First completed turn derives the title
	sess, err := sessions.Get(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Fever, Cough, Fatigue", sess.Title)
}

func TestTurn_SecondTurnCarriesHistory(t *testing.T) {
	completer := &fakeCompleter{reply: validReply(t, "First reply.")}
	svc, _ := newTestService(t, completer)
	ctx := context.Background()

	first, err := svc.Turn(ctx, "", "fever and chills")
	require.NoError(t, err)

	completer.reply = validReply(t, "Second reply.")
	second, err := svc.Turn(ctx, first.SessionID, "it got worse overnight")
	require.NoError(t, err)

	assert.Equal(t, first.SessionID, second.SessionID)
	// Prior history excludes the just-appended user message
	require.Len(t, completer.history, 2)
	assert.Equal(t, core.RoleUser, completer.history[0].Role)
	assert.Equal(t, "fever and chills", completer.history[0].Content)
	assert.Equal(t, core.RoleAssistant, completer.history[1].Role)
	assert.Equal(t, "it got worse overnight", completer.userText)
}

func TestTurn_UpstreamFailureKeepsUserMessage(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("connection refused")}
	svc, sessions := newTestService(t, completer)
	ctx := context.Background()

	// Create the session through a failing turn; the id comes from the list
	_, err := svc.Turn(ctx, "", "fever")
	assert.ErrorIs(t, err, core.ErrUpstreamUnavailable)

	all, err := sessions.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	messages, err := sessions.Messages(ctx, all[0].ID)
	require.NoError(t, err)
	require.Len(t, messages, 1, "user message must survive the failed turn")
	assert.Equal(t, core.RoleUser, messages[0].Role)
	assert.Equal(t, "fever", messages[0].Content)

	// A retried turn on the same session succeeds and tolerates the trailing
	// user message
	completer.err = nil
	completer.reply = validReply(t, "Recovered.")
	result, err := svc.Turn(ctx, all[0].ID, "fever")
	require.NoError(t, err)

	messages, err = sessions.Messages(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Len(t, messages, 3)
}

func TestTurn_UnparsableReplyReturnedVerbatim(t *testing.T) {
	completer := &fakeCompleter{reply: "Plain prose without any data block."}
	svc, _ := newTestService(t, completer)

	result, err := svc.Turn(context.Background(), "", "fever")
	require.NoError(t, err)
	assert.Nil(t, result.Analysis)
	assert.Equal(t, "Plain prose without any data block.", result.Reply)
}

func TestTurn_NoMatchesStillCompletes(t *testing.T) {
	completer := &fakeCompleter{reply: validReply(t, "Hard to say.")}
	svc, _ := newTestService(t, completer)

	result, err := svc.Turn(context.Background(), "", "xyzzy plugh quux")
	require.NoError(t, err)
	assert.Empty(t, result.Matches)
	assert.NotContains(t, completer.instructions, "Local database preliminary matches")
}

func TestTurn_ParallelSessionsDoNotBlock(t *testing.T) {
	completer := &fakeCompleter{reply: validReply(t, "ok")}
	svc, _ := newTestService(t, completer)
	ctx := context.Background()

	done := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			_, err := svc.Turn(ctx, "", "fever and cough")
			done <- err
		}()
	}
	for i := 0; i < 4; i++ {
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("turns deadlocked")
		}
	}
}
