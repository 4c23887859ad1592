// Package session owns the mutable per-conversation state: the ordered
// message log and the derived title.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sandevgo/triagebot/internal/core"
	"github.com/sandevgo/triagebot/pkg/log"
)

const seedTitleLimit = 50

type Manager struct {
	store core.SessionStore
}

func NewManager(store core.SessionStore) *Manager {
	return &Manager{store: store}
}

// ResolveOrCreate returns the session with the given id, or creates a fresh
// one when the id is empty or unknown. A new session is seeded with a title
// cut from the opening message.
func (m *Manager) ResolveOrCreate(ctx context.Context, id, seedText string) (*core.Session, error) {
	if id != "" {
		s, err := m.store.GetSession(ctx, id)
		if err == nil {
			return s, nil
		}
	}

	s := &core.Session{
		ID:    uuid.NewString(),
		Title: seedTitle(seedText),
	}
	if err := m.store.CreateSession(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.FromCtx(ctx).Debug().Str("session_id", s.ID).Msg("created session")
	return s, nil
}

func (m *Manager) Append(ctx context.Context, sessionID, role, content string) (*core.Message, error) {
	msg := &core.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	}
	if err := m.store.AddMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (m *Manager) Messages(ctx context.Context, sessionID string) ([]core.Message, error) {
	return m.store.GetMessages(ctx, sessionID)
}

func (m *Manager) Get(ctx context.Context, sessionID string) (*core.Session, error) {
	return m.store.GetSession(ctx, sessionID)
}

func (m *Manager) ListAll(ctx context.Context) ([]core.Session, error) {
	return m.store.ListSessions(ctx)
}

func (m *Manager) Rename(ctx context.Context, sessionID, newTitle string) (*core.Session, error) {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return nil, fmt.Errorf("empty title: %w", core.ErrInvalidArgument)
	}
	if err := m.store.UpdateSessionTitle(ctx, sessionID, newTitle); err != nil {
		return nil, err
	}
	return m.store.GetSession(ctx, sessionID)
}

func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.store.DeleteSession(ctx, sessionID)
}

func (m *Manager) DeleteAll(ctx context.Context) error {
	return m.store.DeleteAllSessions(ctx)
}

// MaybeRetitle derives a better title from the opening user message once the
// first turn has completed. It fires only while the session holds at most two
// messages, so a settled conversation is never retitled; a retried first turn
// re-derives the same title, which is harmless. Best-effort: any failure is
// logged and swallowed.
func (m *Manager) MaybeRetitle(ctx context.Context, sessionID, userText string) {
	logger := log.FromCtx(ctx)

	count, err := m.store.CountMessages(ctx, sessionID)
	if err != nil {
		logger.Warn().Err(err).Msg("retitle: failed to count messages")
		return
	}
	if count > 2 {
		return
	}

	title := DeriveTitle(userText)
	if title == "" {
		return
	}
	if err := m.store.UpdateSessionTitle(ctx, sessionID, title); err != nil {
		logger.Warn().Err(err).Msg("retitle: failed to update title")
	}
}

func seedTitle(seedText string) string {
	seedText = strings.TrimSpace(seedText)
	runes := []rune(seedText)
	if len(runes) <= seedTitleLimit {
		return seedText
	}
	return string(runes[:seedTitleLimit]) + "..."
}
