package cache

import (
	"context"
	"errors"
	"time"
)

// CompletionCache stores generated descriptions keyed by their request.
// Implementations are best-effort; callers treat any error as a miss.
type CompletionCache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

var ErrCacheMiss = errors.New("completion cache miss")
