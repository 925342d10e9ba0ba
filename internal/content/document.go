package content

import (
	"context"
	"sync"
)

// Document is a singleton value stored under one key, such as the site
// settings. Replace overwrites it whole.
type Document[T any] struct {
	key   string
	store *Store
	def   func() T

	mu sync.Mutex
}

func NewDocument[T any](key string, store *Store, def func() T) *Document[T] {
	return &Document[T]{key: key, store: store, def: def}
}

// Get returns the stored value, or the default when nothing usable is stored.
func (d *Document[T]) Get(ctx context.Context) T {
	d.mu.Lock()
	defer d.mu.Unlock()

	var v T
	if d.store.Load(ctx, d.key, &v) {
		return v
	}
	return d.fallback()
}

// Replace saves v and returns it.
func (d *Document[T]) Replace(ctx context.Context, v T) T {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.store.Save(ctx, d.key, v)
	return v
}

// Seed writes the default when nothing usable is stored, or always when force
// is set.
func (d *Document[T]) Seed(ctx context.Context, force bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !force {
		var v T
		if d.store.Load(ctx, d.key, &v) {
			return false
		}
	}
	d.store.Save(ctx, d.key, d.fallback())
	return true
}

func (d *Document[T]) fallback() T {
	if d.def == nil {
		var zero T
		return zero
	}
	return d.def()
}
