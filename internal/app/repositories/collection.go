package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/store"
)

// Collection binds one entity type to its fixed store key and seed
// dataset. Load and Save always move the whole collection; there are no
// partial updates. Update serializes the read-modify-write cycle so
// concurrent handlers cannot interleave writes to the same key.
type Collection[T any] struct {
	store  store.Store
	key    string
	seed   func() []T
	logger zerolog.Logger
	mu     sync.Mutex
}

// NewCollection creates a collection bound to key, reseeded from seed
// when the key is absent or unparsable.
func NewCollection[T any](st store.Store, key string, seed func() []T, logger zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		store:  st,
		key:    key,
		seed:   seed,
		logger: logger,
	}
}

// Load returns the stored collection. A missing key or a parse failure
// is recovered silently: the seed defaults are persisted and returned,
// so subsequent loads are stable.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Save overwrites the stored collection.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, items)
}

// Update runs fn over the current collection and persists the result,
// all under the collection lock. When fn returns an error nothing is
// written and the error is passed through unchanged.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := fn(items)
	if err != nil {
		return nil, err
	}

	if err := c.save(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", c.key, err)
	}

	if ok {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return items, nil
		}
		c.logger.Warn().Str("key", c.key).Msg("Stored collection is unparsable, reseeding defaults")
	}

	items := c.seed()
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize collection %q: %w", c.key, err)
	}

	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		return fmt.Errorf("failed to save collection %q: %w", c.key, err)
	}

	return nil
}
