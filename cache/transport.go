package cache

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"fetchrecipes/networking"
	"fetchrecipes/types"
)

// Store is the storage used by Transport
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Transport serves payloads from a Store and falls through to the wrapped
// transport on a miss. Only non-empty payloads are stored. Cache errors are
// logged and never fail a fetch.
type Transport struct {
	next  networking.Transport
	store Store
	ttl   time.Duration
	log   *slog.Logger
}

// NewTransport wraps next with a cache
func NewTransport(next networking.Transport, store Store, ttl time.Duration, logger *slog.Logger) *Transport {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Transport{
		next:  next,
		store: store,
		ttl:   ttl,
		log:   logger.With("component", "cache"),
	}
}

// Key is the cache key for a target
func Key(target *url.URL) string {
	return "payload:" + types.GenerateID(target.String())
}

// Fetch implements networking.Transport
func (t *Transport) Fetch(ctx context.Context, target *url.URL) ([]byte, error) {
	key := Key(target)

	data, ok, err := t.store.Get(ctx, key)
	switch {
	case err != nil:
		t.log.Warn("cache read failed", "target", target.String(), "error", err)
	case ok:
		t.log.Debug("cache hit", "target", target.String())
		return data, nil
	}

	data, err = t.next.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}

	if len(data) > 0 {
		if err := t.store.Set(ctx, key, data, t.ttl); err != nil {
			t.log.Warn("cache write failed", "target", target.String(), "error", err)
		}
	}
	return data, nil
}
