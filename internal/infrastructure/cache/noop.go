// Package cache holds the no-op domain.Cache used when caching is disabled.
package cache

import (
	"context"
	"time"
)

// NoOp reports a miss for every lookup and accepts every write.
type NoOp struct{}

func NewNoOp() *NoOp {
	return &NoOp{}
}

func (c *NoOp) Get(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (c *NoOp) Set(_ context.Context, _, _ string, _ time.Duration) error {
	return nil
}

func (c *NoOp) Delete(_ context.Context, _ string) error {
	return nil
}

func (c *NoOp) Ping(_ context.Context) error {
	return nil
}
