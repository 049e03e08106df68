package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/api"
	"github.com/pageza/recipebox/backend/internal/catalog"
	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/logging"
	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/server"
	"github.com/pageza/recipebox/backend/internal/service"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)
	if err := database.RunMigrations(db, logger); err != nil {
		return err
	}

	redisClient, err := connectRedis(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	store, err := database.NewStore(ctx, cfg, db, cmdable(redisClient), logger)
	if err != nil {
		return err
	}

	builtins, err := catalog.Load()
	if err != nil {
		return err
	}

	var limits api.RateLimits
	if cfg.RateLimit > 0 && redisClient != nil {
		limits.Creation = middleware.NewRecipeCreationRateLimiter(redisClient, cfg.RateLimit, logger)
		limits.Modification = middleware.NewRecipeModificationRateLimiter(redisClient, cfg.RateLimit, logger)
	} else if cfg.RateLimit > 0 {
		logger.Warn("RATE_LIMIT set but Redis is not configured or reachable; recipe writes are not rate limited")
	}

	srv := server.New(cfg, server.Deps{
		Auth:      service.NewAuthService(db, cfg.JWTSecret, logger),
		Workspace: service.NewWorkspace(store, builtins, logger),
		Limits:    limits,
	}, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// connectRedis returns nil when nothing in cfg needs Redis. Redis storage
// must connect; when only the rate limiter wants Redis, an unreachable server
// disables the limiter instead of failing start-up.
func connectRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	if !needsRedis(cfg) {
		return nil, nil
	}
	client, err := database.NewRedisClient(ctx, cfg, logger)
	if err != nil && cfg.StorageBackend != config.StorageRedis {
		logger.Warn("redis unavailable; rate limiting disabled", zap.Error(err))
		return nil, nil
	}
	return client, err
}

// cmdable keeps a nil client from becoming a non-nil interface
func cmdable(client *redis.Client) redis.Cmdable {
	if client == nil {
		return nil
	}
	return client
}

// needsRedis reports whether the storage backend or the rate limiter use Redis
func needsRedis(cfg *config.Config) bool {
	if cfg.StorageBackend == config.StorageRedis {
		return true
	}
	return cfg.RateLimit > 0 && (cfg.RedisHost != "" || cfg.RedisURL != "")
}

