package core

import "context"

// Completer is the external text-completion collaborator: ordered history plus
// instructions in, raw text out. Latency is unbounded; callers own timeouts.
// The provider's identity, model and credentials are configuration concerns.
type Completer interface {
	Complete(ctx context.Context, instructions string, history []Message, userText string) (string, error)
}
