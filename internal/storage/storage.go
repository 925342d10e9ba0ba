// Package storage is the key-value port the content and session layers
// persist through. Each key holds one serialized value; writes overwrite.
//
// Adapters: memory, file, sqlite, mongo, s3 and a per-request cookie jar.
// Backend failures are wrapped in common.ErrStorageUnavailable and missing
// keys are reported as common.ErrNotFound.
package storage

import (
	"context"
	"fmt"

	"github.com/Zachkp/portfolio/internal/common"
)

// Storage is the minimal key-value contract. Implementations must be safe for
// concurrent use.
type Storage interface {
	// Get returns the value stored under key or common.ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Closer is implemented by adapters holding connections.
type Closer interface {
	Close(ctx context.Context) error
}

func unavailable(op, key string, err error) error {
	return fmt.Errorf("%s %q: %w: %v", op, key, common.ErrStorageUnavailable, err)
}
