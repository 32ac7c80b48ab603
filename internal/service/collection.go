package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

// upsertMode controls what save does when it is handed an identifier that
// matches no stored record. The two modes exist because callers depend on
// both behaviors: account-like data fails loudly, venue data inserts at the
// supplied identifier.
type upsertMode int

const (
	// strictUpdate fails with ErrNotFound on an unmatched identifier.
	strictUpdate upsertMode = iota
	// insertMissing creates a record using the supplied identifier verbatim.
	insertMissing
)

// entity constrains a collection's element type to something carrying Meta.
type entity[T any] interface {
	*T
	EntityMeta() *model.Meta
}

// collection owns one JSON-encoded list stored under a single key. Every
// write is a full read-modify-rewrite of the list; a mutex serializes the
// cycle so concurrent writers cannot silently drop each other's records.
type collection[T any, P entity[T]] struct {
	store storage.Store
	key   string
	mode  upsertMode

	mu sync.Mutex
}

// load reads and decodes the full collection. A key that was never written
// decodes as an empty collection.
func (c *collection[T, P]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", c.key, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, &DecodeError{Key: c.key, Err: err}
	}
	return items, nil
}

// flush serializes the full collection and rewrites the stored blob.
func (c *collection[T, P]) flush(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		return fmt.Errorf("failed to write collection %q: %w", c.key, err)
	}
	return nil
}

// all returns every record in storage order.
func (c *collection[T, P]) all(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

// byID returns the first record with the given identifier, or ok=false.
func (c *collection[T, P]) byID(ctx context.Context, id string) (T, bool, error) {
	return c.first(ctx, func(item *T) bool {
		return P(item).EntityMeta().ID == id
	})
}

// first returns the first record matching pred, or ok=false. Absence is not
// an error.
func (c *collection[T, P]) first(ctx context.Context, pred func(*T) bool) (T, bool, error) {
	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, false, err
	}
	for i := range items {
		if pred(&items[i]) {
			return items[i], true, nil
		}
	}
	return zero, false, nil
}

// where returns every record matching pred, in storage order.
func (c *collection[T, P]) where(ctx context.Context, pred func(*T) bool) ([]T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	var matched []T
	for i := range items {
		if pred(&items[i]) {
			matched = append(matched, items[i])
		}
	}
	return matched, nil
}

// save is the single write path. An empty id creates a fresh record from
// build; a matching id merges the patch into the stored record in place. An
// unmatched id either fails (strictUpdate) or appends a record built from
// build carrying the supplied id (insertMissing).
func (c *collection[T, P]) save(ctx context.Context, id string, build func() T, merge func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	now := time.Now().UTC()

	if id == "" {
		rec := build()
		meta := P(&rec).EntityMeta()
		meta.ID = NewID()
		meta.CreatedAt = now
		meta.UpdatedAt = now
		items = append(items, rec)
		if err := c.flush(ctx, items); err != nil {
			return zero, err
		}
		return rec, nil
	}

	for i := range items {
		if P(&items[i]).EntityMeta().ID == id {
			merge(&items[i])
			P(&items[i]).EntityMeta().UpdatedAt = now
			if err := c.flush(ctx, items); err != nil {
				return zero, err
			}
			return items[i], nil
		}
	}

	if c.mode == strictUpdate {
		return zero, fmt.Errorf("collection %q id %q: %w", c.key, id, ErrNotFound)
	}

	rec := build()
	meta := P(&rec).EntityMeta()
	meta.ID = id
	meta.CreatedAt = now
	meta.UpdatedAt = now
	items = append(items, rec)
	if err := c.flush(ctx, items); err != nil {
		return zero, err
	}
	return rec, nil
}

// update merges the patch into an existing record and fails with ErrNotFound
// on an unmatched identifier, regardless of the collection's upsert mode.
func (c *collection[T, P]) update(ctx context.Context, id string, merge func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	for i := range items {
		if P(&items[i]).EntityMeta().ID == id {
			merge(&items[i])
			P(&items[i]).EntityMeta().UpdatedAt = time.Now().UTC()
			if err := c.flush(ctx, items); err != nil {
				return zero, err
			}
			return items[i], nil
		}
	}
	return zero, fmt.Errorf("collection %q id %q: %w", c.key, id, ErrNotFound)
}

// delete removes every record with the given identifier and rewrites the
// collection. Deleting an absent identifier is a no-op.
func (c *collection[T, P]) delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for i := range items {
		if P(&items[i]).EntityMeta().ID != id {
			kept = append(kept, items[i])
		}
	}
	return c.flush(ctx, kept)
}
