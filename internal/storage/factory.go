package storage

import (
	"context"
	"fmt"

	"github.com/Zachkp/portfolio/internal/config"
)

// NewFromConfig creates the Storage implementation named by cfg.Type.
func NewFromConfig(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStorage(), nil
	case "file":
		return NewFileStorage(cfg.DataDir)
	case "sqlite":
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("sqlite storage requires sqlite_path to be set")
		}
		return NewSQLiteStorage(cfg.SQLitePath)
	case "mongo":
		return NewMongoStorage(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	case "s3":
		return NewS3Storage(ctx, S3Options{
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// Close releases the backend connection if the storage holds one.
func Close(ctx context.Context, s Storage) error {
	if c, ok := s.(Closer); ok {
		return c.Close(ctx)
	}
	return nil
}
