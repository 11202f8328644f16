// Package memory implements the in-memory mapping store. The map is split
// into a fixed number of shards with independent read-write locks, so writes
// to unrelated identifiers never contend and readers of one shard are not
// blocked by writers of another.
package memory

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/sp3dr4/wren/internal/domain"
)

// shardCount must be a power of two so the bucket mask below works.
const shardCount = 32

type shard struct {
	mu   sync.RWMutex
	urls map[string]string
}

// Store maps identifiers to full URLs. It implements domain.MappingWriter
// and domain.MappingReader and is the single source of truth; all state is
// lost when the process exits.
type Store struct {
	shards [shardCount]shard
}

func NewStore() *Store {
	s := &Store{}
	for i := range s.shards {
		s.shards[i].urls = make(map[string]string)
	}
	return s
}

func (s *Store) shardFor(id string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &s.shards[h.Sum32()&(shardCount-1)]
}

// Save inserts or overwrites the mapping for id. Last write wins on a key
// collision; the shard lock guarantees a reader sees either the previous
// value or the new one, never a partial write.
func (s *Store) Save(_ context.Context, fullURL, id string) error {
	sh := s.shardFor(id)
	sh.mu.Lock()
	sh.urls[id] = fullURL
	sh.mu.Unlock()
	return nil
}

// Get returns the full URL stored for id, or domain.ErrNotFound.
func (s *Store) Get(_ context.Context, id string) (string, error) {
	sh := s.shardFor(id)
	sh.mu.RLock()
	fullURL, ok := sh.urls[id]
	sh.mu.RUnlock()
	if !ok {
		return "", domain.ErrNotFound
	}
	return fullURL, nil
}

// Len reports the number of stored mappings across all shards.
func (s *Store) Len() int {
	n := 0
	for i := range s.shards {
		s.shards[i].mu.RLock()
		n += len(s.shards[i].urls)
		s.shards[i].mu.RUnlock()
	}
	return n
}
