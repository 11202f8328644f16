package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/sp3dr4/wren/internal/domain"
)

func TestStore_SaveAndGet(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Save(ctx, "https://example.com/", "abc1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "abc1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://example.com/" {
		t.Fatalf("expected https://example.com/, got %s", got)
	}

	if store.Len() != 1 {
		t.Fatalf("expected 1 mapping, got %d", store.Len())
	}
}

func TestStore_GetUnknownID(t *testing.T) {
	store := NewStore()

	_, err := store.Get(context.Background(), "does-not-exist")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Save(ctx, "https://old.example/", "same-id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(ctx, "https://new.example/", "same-id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "same-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://new.example/" {
		t.Fatalf("expected the overwrite to win, got %s", got)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 mapping after overwrite, got %d", store.Len())
	}
}

func TestStore_ConcurrentDistinctKeys(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	const n = 500

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("id-%04d", i)
			url := fmt.Sprintf("https://host-%04d.example/", i)
			if err := store.Save(ctx, url, id); err != nil {
				t.Errorf("save %s: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	if store.Len() != n {
		t.Fatalf("expected %d mappings, got %d", n, store.Len())
	}

	// Each key resolves to exactly its own URL, no cross-talk.
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("id-%04d", i)
		want := fmt.Sprintf("https://host-%04d.example/", i)
		got, err := store.Get(ctx, id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if got != want {
			t.Fatalf("get %s: expected %s, got %s", id, want, got)
		}
	}
}

func TestStore_ConcurrentReadersAndWriters(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	const writers = 8
	const readers = 8
	const rounds = 200

	var wg sync.WaitGroup
	wg.Add(writers + readers)
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				id := fmt.Sprintf("w%d-%d", w, i)
				_ = store.Save(ctx, "https://example.com/"+id, id)
			}
		}(w)
	}
	for r := 0; r < readers; r++ {
		go func(r int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				id := fmt.Sprintf("w%d-%d", r%writers, i)
				url, err := store.Get(ctx, id)
				if err != nil {
					continue // not written yet
				}
				// Read-after-write: a visible value is never torn.
				if url != "https://example.com/"+id {
					t.Errorf("get %s: unexpected value %s", id, url)
				}
			}
		}(r)
	}
	wg.Wait()

	if store.Len() != writers*rounds {
		t.Fatalf("expected %d mappings, got %d", writers*rounds, store.Len())
	}
}

func TestStore_ReadAfterWriteVisibility(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("raw-%d", i)
		if err := store.Save(ctx, "https://example.com/", id); err != nil {
			t.Fatalf("save: %v", err)
		}
		if _, err := store.Get(ctx, id); err != nil {
			t.Fatalf("save for %s returned but get does not see it: %v", id, err)
		}
	}
}
