package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/storage"
)

// RunMigrations creates or updates every table the server uses: accounts,
// sessions and the key/value table behind the gorm storage backend.
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("running auto-migration", zap.String("dialect", db.Dialector.Name()))
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&storage.KVEntry{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
