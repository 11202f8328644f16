package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/sp3dr4/wren/internal/domain"
)

// GetFullURL looks an identifier up in the mapping store and returns the
// associated URL. A look-aside cache is consulted first and filled after a
// store hit; every cache failure is treated as a miss, the store stays the
// source of truth.
type GetFullURL struct {
	store  domain.MappingReader
	cache  domain.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewGetFullURL(store domain.MappingReader, cache domain.Cache, ttl time.Duration, logger *slog.Logger) *GetFullURL {
	return &GetFullURL{
		store:  store,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Execute returns the full URL for id, or domain.ErrNotFound. Any string is
// a legal lookup key; no shape validation happens here.
func (op *GetFullURL) Execute(ctx context.Context, id string) (string, error) {
	if cached, err := op.cache.Get(ctx, id); err != nil {
		op.logger.Warn("Cache lookup failed, falling back to store", "id", id, "error", err)
	} else if cached != "" {
		return cached, nil
	}

	fullURL, err := op.store.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if err := op.cache.Set(ctx, id, fullURL, op.ttl); err != nil {
		op.logger.Warn("Cache fill failed", "id", id, "error", err)
	}
	return fullURL, nil
}
