// Package triage runs a single chat turn end to end: local fuzzy matching
// against the condition corpus, the external completion call, and
// reconciliation of the reply into the session log.
package triage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/triagebot/internal/analysis"
	"github.com/sandevgo/triagebot/internal/core"
	"github.com/sandevgo/triagebot/internal/match"
	"github.com/sandevgo/triagebot/internal/service/session"
	"github.com/sandevgo/triagebot/pkg/log"
)

type Config struct {
	// CompletionTimeout bounds the external call; zero means no deadline.
	CompletionTimeout time.Duration
	// HistoryTokenBudget trims the history sent upstream; zero disables.
	HistoryTokenBudget int
}

type Service struct {
	cfg       Config
	sessions  *session.Manager
	completer core.Completer
	corpus    []core.Condition
	locks     *keyedMutex
}

func NewService(cfg Config, sessions *session.Manager, completer core.Completer, corpus []core.Condition) *Service {
	return &Service{
		cfg:       cfg,
		sessions:  sessions,
		completer: completer,
		corpus:    corpus,
		locks:     newKeyedMutex(),
	}
}

// Turn executes one conversation turn. The per-session lock is held for the
// local appends only, not across the completion call, so concurrent readers
// of the same session are never starved by upstream latency; they may observe
// the session without the pending assistant reply.
//
// On an upstream failure the already-appended user message stays in the
// session, so a trailing user message with no assistant reply is a legitimate
// state every reader must tolerate.
func (s *Service) Turn(ctx context.Context, sessionID, userText string) (*core.TurnResult, error) {
	logger := log.FromCtx(ctx)

	if strings.TrimSpace(userText) == "" {
		return nil, fmt.Errorf("empty message: %w", core.ErrInvalidArgument)
	}

	sess, err := s.sessions.ResolveOrCreate(ctx, sessionID, userText)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(sess.ID)
	userMsg, err := s.sessions.Append(ctx, sess.ID, core.RoleUser, userText)
	if err != nil {
		s.locks.Unlock(sess.ID)
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}
	s.locks.Unlock(sess.ID)

	matches := match.Match(match.Normalize(userText), s.corpus)
	logger.Debug().Str("session_id", sess.ID).Int("matches", len(matches)).Msg("local corpus matched")

	history, err := s.sessions.Messages(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	prior := priorTurns(history, userMsg.ID)
	prior = trimHistory(prior, s.cfg.HistoryTokenBudget)

	raw, err := s.complete(ctx, buildInstructions(matches), prior, userText)
	if err != nil {
		logger.Error().Err(err).Str("session_id", sess.ID).Msg("completion failed")
		return nil, fmt.Errorf("completion failed: %w", core.ErrUpstreamUnavailable)
	}

	s.locks.Lock(sess.ID)
	if _, err := s.sessions.Append(ctx, sess.ID, core.RoleAssistant, raw); err != nil {
		s.locks.Unlock(sess.ID)
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}
	s.sessions.MaybeRetitle(ctx, sess.ID, userText)
	s.locks.Unlock(sess.ID)

	clean, parsed := analysis.Parse(raw)

	return &core.TurnResult{
		SessionID: sess.ID,
		Reply:     clean,
		Analysis:  parsed,
		Matches:   matches,
	}, nil
}

// complete is the single suspension point of the pipeline. No internal retry:
// a retry is a caller-initiated new turn with the same text.
func (s *Service) complete(ctx context.Context, instructions string, history []core.Message, userText string) (string, error) {
	if s.cfg.CompletionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.CompletionTimeout)
		defer cancel()
	}
	return s.completer.Complete(ctx, instructions, history, userText)
}

// priorTurns strips the just-appended user message off the history; the
// provider receives it separately as the latest input.
func priorTurns(history []core.Message, latestID string) []core.Message {
	prior := make([]core.Message, 0, len(history))
	for _, m := range history {
		if m.ID == latestID {
			continue
		}
		prior = append(prior, m)
	}
	return prior
}
