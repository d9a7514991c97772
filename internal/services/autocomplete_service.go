package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"taskboard.com/taskboard/internal/cache"
	"taskboard.com/taskboard/internal/completion"
	apperrors "taskboard.com/taskboard/internal/errors"
)

// AutocompleteService generates a task description from the title (and any
// partial description) via the external completion service. Results are
// cached when a cache is configured; cache failures never fail a request.
type AutocompleteService struct {
	client completion.Client
	cache  cache.CompletionCache
	ttl    time.Duration
}

func NewAutocompleteService(client completion.Client, c cache.CompletionCache, ttl time.Duration) *AutocompleteService {
	return &AutocompleteService{
		client: client,
		cache:  c,
		ttl:    ttl,
	}
}

func (s *AutocompleteService) Autocomplete(ctx context.Context, title, description string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", apperrors.ErrTitleRequired
	}

	key := cacheKey(title, description)
	if s.cache != nil {
		text, err := s.cache.Get(ctx, key)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warnf("completion cache read failed: %v", err)
		}
	}

	text, err := s.client.Complete(ctx, buildPrompt(title, description))
	if err != nil {
		return "", apperrors.ErrCompletionUnavailable.Wrap(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
			log.Warnf("completion cache write failed: %v", err)
		}
	}

	return text, nil
}

func buildPrompt(title, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short, practical description for a personal task titled %q.", title)
	if strings.TrimSpace(description) != "" {
		fmt.Fprintf(&b, " The user has started writing: %q. Continue and improve it.", description)
	}
	b.WriteString(" Reply with the description text only.")
	return b.String()
}

func cacheKey(title, description string) string {
	sum := sha256.Sum256([]byte(title + "\x00" + description))
	return "autocomplete:" + hex.EncodeToString(sum[:])
}
