package core

import "context"

// SessionStore is the persistence collaborator. Implementations must order
// messages by append order and sessions by updated_at descending, and must
// keep each call atomic.
type SessionStore interface {
	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	ListSessions(ctx context.Context) ([]Session, error)
	UpdateSessionTitle(ctx context.Context, id, title string) error
	DeleteSession(ctx context.Context, id string) error
	DeleteAllSessions(ctx context.Context) error

	AddMessage(ctx context.Context, msg *Message) error
	GetMessages(ctx context.Context, sessionID string) ([]Message, error)
	CountMessages(ctx context.Context, sessionID string) (int, error)
}
