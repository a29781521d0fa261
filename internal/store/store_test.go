package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { sqliteStore.Close() })

	memoryStore := NewMemoryStore()
	t.Cleanup(func() { memoryStore.Close() })

	return map[string]Store{
		"memory": memoryStore,
		"sqlite": sqliteStore,
	}
}

func TestStoreRoundtrip(t *testing.T) {
	ctx := context.Background()

	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := st.Set(ctx, KeyUsers, `[{"id":"1"}]`); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			value, ok, err := st.Get(ctx, KeyUsers)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !ok {
				t.Fatal("Expected key to exist after Set")
			}
			if value != `[{"id":"1"}]` {
				t.Errorf("Got %q, want %q", value, `[{"id":"1"}]`)
			}
		})
	}
}

func TestStoreMissingKey(t *testing.T) {
	ctx := context.Background()

	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := st.Get(ctx, "no-such-key")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if ok {
				t.Error("Expected missing key to report ok=false")
			}
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	ctx := context.Background()

	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := st.Set(ctx, KeyPolls, "[]"); err != nil {
				t.Fatalf("First Set failed: %v", err)
			}
			if err := st.Set(ctx, KeyPolls, `[{"id":"p1"}]`); err != nil {
				t.Fatalf("Second Set failed: %v", err)
			}

			value, ok, err := st.Get(ctx, KeyPolls)
			if err != nil || !ok {
				t.Fatalf("Get failed: ok=%v err=%v", ok, err)
			}
			if value != `[{"id":"p1"}]` {
				t.Errorf("Got %q after overwrite, want %q", value, `[{"id":"p1"}]`)
			}
		})
	}
}

func TestStoreKeysAreIndependent(t *testing.T) {
	ctx := context.Background()

	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := st.Set(ctx, KeyEvents, "events"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := st.Set(ctx, KeyFeedback, "feedback"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			value, ok, err := st.Get(ctx, KeyEvents)
			if err != nil || !ok {
				t.Fatalf("Get failed: ok=%v err=%v", ok, err)
			}
			if value != "events" {
				t.Errorf("Writing one key touched another: got %q", value)
			}
		})
	}
}
