package completion

import "context"

// Client generates text for a prompt. Implementations must return an error
// on any transport or service failure so callers can surface the outage.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
