package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_Get_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	store.Set(context.Background(), "k", "v")

	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatal("expected fresh entry to be present")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatal("expected expired entry to be evicted")
	}
}

func TestStore_DeleteAndDeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "lookups:leagues", []string{"Premier League"})
	store.Set(ctx, "lookups:seasons", []int{2023})
	store.Set(ctx, "other", "v")

	store.Delete(ctx, "other")
	if _, ok := store.Get(ctx, "other"); ok {
		t.Fatal("expected deleted entry to be gone")
	}

	store.DeletePrefix(ctx, "lookups:")
	if _, ok := store.Get(ctx, "lookups:leagues"); ok {
		t.Fatal("expected prefixed entries to be gone")
	}
	if _, ok := store.Get(ctx, "lookups:seasons"); ok {
		t.Fatal("expected prefixed entries to be gone")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
