// Package server defines the transport-agnostic server contract used by the
// lifecycle hooks.
package server

import "context"

// Server is anything that can be started and stopped by the composition
// root's lifecycle.
type Server interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Addr() string
}
