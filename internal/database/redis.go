package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/config"
)

const redisConnectMaxElapsed = 30 * time.Second

func newRedisConnectBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = redisConnectMaxElapsed
	return bo
}

// RedisOptions builds client options from the config. REDIS_URL wins over
// host and port.
func RedisOptions(cfg *config.Config) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

// NewRedisClient creates a Redis client and waits for the server to answer,
// retrying with exponential backoff while it starts up.
func NewRedisClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	opts, err := RedisOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	err = backoff.Retry(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis not ready", zap.String("addr", opts.Addr), zap.Error(err))
			return err
		}
		return nil
	}, backoff.WithContext(newRedisConnectBackoff(), ctx))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to redis", zap.String("addr", opts.Addr))
	return client, nil
}
