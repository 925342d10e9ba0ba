package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/Zachkp/portfolio/internal/common"
	"github.com/Zachkp/portfolio/internal/storage"
)

// FlakyStorage wraps a MemoryStorage and fails the operations that are
// switched on, the way an unavailable backend would.
type FlakyStorage struct {
	*storage.MemoryStorage

	mu         sync.Mutex
	failGet    bool
	failSet    bool
	failDelete bool
	sets       int
}

func NewFlakyStorage() *FlakyStorage {
	return &FlakyStorage{MemoryStorage: storage.NewMemoryStorage()}
}

func (f *FlakyStorage) FailGet(v bool)    { f.mu.Lock(); f.failGet = v; f.mu.Unlock() }
func (f *FlakyStorage) FailSet(v bool)    { f.mu.Lock(); f.failSet = v; f.mu.Unlock() }
func (f *FlakyStorage) FailDelete(v bool) { f.mu.Lock(); f.failDelete = v; f.mu.Unlock() }

// Sets counts Set calls that reached the backing map.
func (f *FlakyStorage) Sets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

func (f *FlakyStorage) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	fail := f.failGet
	f.mu.Unlock()
	if fail {
		return "", fmt.Errorf("get %q: %w", key, common.ErrStorageUnavailable)
	}
	return f.MemoryStorage.Get(ctx, key)
}

func (f *FlakyStorage) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	fail := f.failSet
	if !fail {
		f.sets++
	}
	f.mu.Unlock()
	if fail {
		return fmt.Errorf("set %q: %w", key, common.ErrStorageUnavailable)
	}
	return f.MemoryStorage.Set(ctx, key, value)
}

func (f *FlakyStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	fail := f.failDelete
	f.mu.Unlock()
	if fail {
		return fmt.Errorf("delete %q: %w", key, common.ErrStorageUnavailable)
	}
	return f.MemoryStorage.Delete(ctx, key)
}

var _ storage.Storage = (*FlakyStorage)(nil)
