package domain

import "context"

// MappingWriter is the write capability of a mapping store.
//
// Save inserts the mapping for id, overwriting any previous value
// (last-write-wins). It must be safe under unbounded concurrent calls and
// must never expose a torn write: a concurrent Get observes either the
// previous or the new value, never a mixture. Validation of fullURL is the
// caller's job; the store accepts any pair.
type MappingWriter interface {
	Save(ctx context.Context, fullURL, id string) error
}

// MappingReader is the read capability of a mapping store.
//
// Get returns the stored full URL for id, or ErrNotFound. Once a Save for a
// key has returned, a subsequent Get of that key observes the saved value.
type MappingReader interface {
	Get(ctx context.Context, id string) (string, error)
}

// MappingStore combines both capabilities. Operations depend on the narrow
// interfaces; the composition root provides one concrete store for both.
type MappingStore interface {
	MappingWriter
	MappingReader
}
