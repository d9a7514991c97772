package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

type bucket struct {
	count int
	start time.Time
}

type limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]*bucket
}

func (l *limiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) > l.window {
		b = &bucket{start: now}
		l.buckets[key] = b
		l.prune(now)
	}

	if b.count >= l.limit {
		return false
	}
	b.count++
	return true
}

// prune drops expired buckets so idle clients don't accumulate forever.
// Called with the mutex held.
func (l *limiter) prune(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.start) > l.window {
			delete(l.buckets, key)
		}
	}
}

// RateLimiter rejects requests from a client IP once it exceeds limit
// requests within the window.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	l := &limiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(c.RealIP(), time.Now()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
