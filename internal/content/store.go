package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Zachkp/portfolio/internal/common"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/storage"
)

// Store loads and saves whole collections as JSON over a storage.Storage.
// It never returns storage or decoding errors: persistence is best effort and
// callers fall back to seed data or keep working on the in-memory value.
type Store struct {
	storage storage.Storage
	logger  logging.Logger
}

func NewStore(s storage.Storage, logger logging.Logger) *Store {
	return &Store{storage: s, logger: logger}
}

// Load decodes the value under key into dst. It reports false when the key is
// absent, the backend is unavailable or the blob does not decode. dst may be
// partly filled on a false return and should be discarded.
func (s *Store) Load(ctx context.Context, key string, dst any) bool {
	raw, err := s.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn(ctx, "content load failed, using fallback", "key", key, "error", err)
		}
		return false
	}

	if err := decode(raw, dst); err != nil {
		s.logger.Warn(ctx, "content blob is corrupt, using fallback", "key", key, "error", err)
		return false
	}
	return true
}

// Save encodes v and overwrites the value under key. Failures are logged and
// swallowed.
func (s *Store) Save(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.Error(ctx, "content encode failed", "key", key, "error", err)
		return
	}
	if err := s.storage.Set(ctx, key, string(b)); err != nil {
		s.logger.Warn(ctx, "content save failed, change kept in memory only", "key", key, "error", err)
		return
	}
	s.logger.Debug(ctx, "content saved", "key", key, "bytes", len(b))
}

func decode(raw string, dst any) error {
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrDeserialization, err)
	}
	return nil
}
