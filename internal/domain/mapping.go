package domain

import "errors"

var (
	// ErrNotFound is returned when no mapping exists for an identifier.
	ErrNotFound = errors.New("mapping not found")
	// ErrInvalidURL is returned when an input cannot be parsed as an absolute URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrStoreFailure marks failures of the storage backend itself. The
	// in-memory store never produces it; non-memory backends wrap their I/O
	// errors with it so callers can distinguish them from ErrNotFound.
	ErrStoreFailure = errors.New("store failure")
)

// Mapping is a stored (identifier, full URL) pair. The identifier is the
// unique key; FullURL is the canonical form produced by URL parsing at
// creation time. Mappings are immutable once written and live for the
// process lifetime of the store.
type Mapping struct {
	ID      string `json:"id"`
	FullURL string `json:"url"`
}
