package content

import (
	"context"
	"slices"
	"sync"
)

// Collection is the CRUD layer for one key. Every mutation reads the current
// slice, builds a new one and saves it whole; slices handed out are never
// modified afterwards.
//
// The mutex serializes read-modify-write within this process only. Two
// processes sharing a backend race, and the last Save wins.
type Collection[T Record[T]] struct {
	key   string
	store *Store
	ids   IDGenerator
	seed  func() []T

	mu sync.Mutex
}

// NewCollection returns a collection over key. seed supplies the contents
// shown until the first successful save and may be nil.
func NewCollection[T Record[T]](key string, store *Store, ids IDGenerator, seed func() []T) *Collection[T] {
	return &Collection[T]{key: key, store: store, ids: ids, seed: seed}
}

func (c *Collection[T]) Key() string { return c.key }

// List returns the stored slice, or the seed when nothing usable is stored.
// It never returns nil.
func (c *Collection[T]) List(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current(ctx)
}

// Get returns the record with id.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool) {
	for _, r := range c.List(ctx) {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Create appends item, assigning a fresh id when it has none, and returns the
// new slice.
func (c *Collection[T]) Create(ctx context.Context, item T) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item.RecordID() == "" {
		item = item.WithRecordID(c.ids.New())
	}

	cur := c.current(ctx)
	next := make([]T, 0, len(cur)+1)
	next = append(next, cur...)
	next = append(next, item)

	c.store.Save(ctx, c.key, next)
	return next
}

// Update replaces the record with id by item as given; fields are not merged.
// An unknown id leaves the slice as it was.
func (c *Collection[T]) Update(ctx context.Context, id string, item T) []T {
	return c.Modify(ctx, id, func(T) T { return item })
}

// Modify replaces the record with id by fn(record) under the collection lock.
func (c *Collection[T]) Modify(ctx context.Context, id string, fn func(T) T) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current(ctx)
	next := make([]T, len(cur))
	for i, r := range cur {
		if r.RecordID() == id {
			next[i] = fn(r)
		} else {
			next[i] = r
		}
	}

	c.store.Save(ctx, c.key, next)
	return next
}

// Delete removes the record with id. An unknown id leaves the slice as it was.
func (c *Collection[T]) Delete(ctx context.Context, id string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current(ctx)
	next := make([]T, 0, len(cur))
	for _, r := range cur {
		if r.RecordID() != id {
			next = append(next, r)
		}
	}

	c.store.Save(ctx, c.key, next)
	return next
}

// Seed writes the seed contents when nothing usable is stored, or always when
// force is set. It reports whether it wrote.
func (c *Collection[T]) Seed(ctx context.Context, force bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force {
		var stored []T
		if c.store.Load(ctx, c.key, &stored) && stored != nil {
			return false
		}
	}
	c.store.Save(ctx, c.key, c.seeded())
	return true
}

func (c *Collection[T]) current(ctx context.Context) []T {
	var stored []T
	if c.store.Load(ctx, c.key, &stored) && stored != nil {
		return stored
	}
	return c.seeded()
}

func (c *Collection[T]) seeded() []T {
	if c.seed == nil {
		return []T{}
	}
	items := slices.Clone(c.seed())
	if items == nil {
		return []T{}
	}
	return items
}
