package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		logger.Info("migrations complete")
		return nil
	},
}
