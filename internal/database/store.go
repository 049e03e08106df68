package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/storage"
)

// NewStore returns the storage backend named by STORAGE_BACKEND. db and
// redisClient may be nil when the chosen backend does not need them.
func NewStore(ctx context.Context, cfg *config.Config, db *gorm.DB, redisClient redis.Cmdable, logger *zap.Logger) (storage.Store, error) {
	logger.Info("using storage backend", zap.String("backend", cfg.StorageBackend))

	switch cfg.StorageBackend {
	case config.StorageMemory:
		return storage.NewMemoryStore(), nil

	case config.StorageGorm:
		if db == nil {
			return nil, fmt.Errorf("gorm storage needs a database connection")
		}
		return storage.NewGormStore(db)

	case config.StorageRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis storage needs a redis connection")
		}
		return storage.NewRedisStore(redisClient, ""), nil

	case config.StorageS3:
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := s3cfg.CheckBucket(ctx); err != nil {
			return nil, err
		}
		return storage.NewS3Store(s3cfg.Client, s3cfg.BucketName, s3cfg.Prefix), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
