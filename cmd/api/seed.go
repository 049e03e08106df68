package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/catalog"
	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/logging"
	"github.com/pageza/recipebox/backend/internal/service"
)

var (
	seedPassword  string
	seedEmails    []string
	seedFavorites []string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create demo accounts with a few favorite recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if cfg.Environment == config.Production {
			return errors.New("refusing to seed demo accounts in production")
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

		// seeding favorites needs a store that outlives the process
		if cfg.StorageBackend == config.StorageMemory {
			return errors.New("seed needs a persistent STORAGE_BACKEND")
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

		auth := service.NewAuthService(db, cfg.JWTSecret, logger)
		workspace := service.NewWorkspace(store, catalog.MustLoad(), logger)
		return seedUsers(ctx, auth, workspace, seedEmails, seedPassword, seedFavorites, logger)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedPassword, "password", "testpassword123", "password for every demo account")
	seedCmd.Flags().StringSliceVar(&seedEmails, "email", []string{"john.doe@example.com", "jane.smith@example.com"}, "demo account emails")
	seedCmd.Flags().StringSliceVar(&seedFavorites, "favorite", []string{"ugali", "pizza"}, "recipe slugs to mark as favorite")
}

// seedUsers creates each account that does not exist yet and marks the
// given slugs as favorites. Running it twice leaves the same state.
func seedUsers(ctx context.Context, auth service.IAuthService, workspace service.IWorkspace, emails []string, password string, favorites []string, logger *zap.Logger) error {
	for _, email := range emails {
		user, err := auth.SignUp(ctx, email, password)
		if errors.Is(err, service.ErrUserExists) {
			logger.Info("demo account already exists", zap.String("email", email))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", email, err)
		}

		_, favs := workspace.ForUser(user.ID.String())
		for _, slug := range favorites {
			if favs.IsFavorite(ctx, slug) {
				continue
			}
			if _, err := favs.Toggle(ctx, slug); err != nil {
				return fmt.Errorf("failed to favorite %s for %s: %w", slug, email, err)
			}
		}
		logger.Info("created demo account", zap.String("email", email), zap.Strings("favorites", favorites))
	}
	return nil
}
