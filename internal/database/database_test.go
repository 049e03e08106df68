package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/storage"
)

func sqliteConfig(t *testing.T) *config.Config {
	return &config.Config{
		DBDriver:       "sqlite",
		DBPath:         filepath.Join(t.TempDir(), "test.db"),
		StorageBackend: config.StorageGorm,
	}
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	db, err := Open(sqliteConfig(t), logger)
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })

	require.NoError(t, RunMigrations(db, logger))
	require.NoError(t, HealthCheck(ctx, db))

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Session{}))
	assert.True(t, db.Migrator().HasTable(&storage.KVEntry{}))

	// migrations are repeatable
	require.NoError(t, RunMigrations(db, logger))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "mysql"}, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	cfg := sqliteConfig(t)
	db, err := Open(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })

	s, err := NewStore(ctx, cfg, db, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &storage.GormStore{}, s)

	cfg.StorageBackend = config.StorageMemory
	s, err = NewStore(ctx, cfg, nil, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryStore{}, s)

	cfg.StorageBackend = config.StorageRedis
	_, err = NewStore(ctx, cfg, nil, nil, logger)
	assert.Error(t, err)

	cfg.StorageBackend = "floppy"
	_, err = NewStore(ctx, cfg, nil, nil, logger)
	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestRedisOptions(t *testing.T) {
	opts, err := RedisOptions(&config.Config{RedisHost: "cache", RedisPort: "6380", RedisDB: 2})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)

	opts, err = RedisOptions(&config.Config{RedisHost: "ignored", RedisURL: "redis://:pw@redis.internal:6379/3"})
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 3, opts.DB)

	_, err = RedisOptions(&config.Config{RedisURL: "http://nope"})
	assert.Error(t, err)
}

func TestNewRedisClientGivesUp(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRedisClient(ctx, &config.Config{RedisHost: "127.0.0.1", RedisPort: "1"}, zap.NewNop())
	assert.Error(t, err)
}
