package repositories

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/store"
)

type widget struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func seedWidgets() []widget {
	return []widget{
		{ID: "a", Count: 1},
		{ID: "b", Count: 2},
	}
}

func newTestCollection(t *testing.T) (*Collection[widget], store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	t.Cleanup(func() { st.Close() })
	return NewCollection(st, "widgets", seedWidgets, zerolog.Nop()), st
}

func TestLoadSeedsMissingKey(t *testing.T) {
	ctx := context.Background()
	coll, st := newTestCollection(t)

	items, err := coll.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(items, seedWidgets()) {
		t.Errorf("Got %+v, want seed defaults", items)
	}

	// The seed must have been written back so later loads are stable
	if _, ok, _ := st.Get(ctx, "widgets"); !ok {
		t.Error("Seed defaults were not persisted")
	}
}

func TestLoadReseedsUnparsableValue(t *testing.T) {
	ctx := context.Background()
	coll, st := newTestCollection(t)

	if err := st.Set(ctx, "widgets", "{not json"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	items, err := coll.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(items, seedWidgets()) {
		t.Errorf("Got %+v, want seed defaults after corrupt value", items)
	}

	// A second load must return the same data, not reseed again
	again, err := coll.Load(ctx)
	if err != nil {
		t.Fatalf("Second load failed: %v", err)
	}
	if !reflect.DeepEqual(again, items) {
		t.Errorf("Loads after reseed are not stable: %+v vs %+v", again, items)
	}
}

func TestSaveLoadFixedPoint(t *testing.T) {
	ctx := context.Background()
	coll, _ := newTestCollection(t)

	saved := []widget{{ID: "x", Count: 10}}
	if err := coll.Save(ctx, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := coll.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("Load(Save(x)) = %+v, want %+v", loaded, saved)
	}
}

func TestUpdateAppliesFunction(t *testing.T) {
	ctx := context.Background()
	coll, _ := newTestCollection(t)

	updated, err := coll.Update(ctx, func(items []widget) ([]widget, error) {
		items[0].Count = 100
		return items, nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated[0].Count != 100 {
		t.Errorf("Update result not applied: %+v", updated[0])
	}

	loaded, err := coll.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded[0].Count != 100 {
		t.Errorf("Update was not persisted: %+v", loaded[0])
	}
}

func TestUpdateErrorWritesNothing(t *testing.T) {
	ctx := context.Background()
	coll, _ := newTestCollection(t)

	if _, err := coll.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	boom := errors.New("boom")
	_, err := coll.Update(ctx, func(items []widget) ([]widget, error) {
		items[0].Count = 999
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected the function error back, got %v", err)
	}

	loaded, err := coll.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, seedWidgets()) {
		t.Errorf("Failed update must not persist changes, got %+v", loaded)
	}
}
