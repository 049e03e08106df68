package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pageza/recipebox/backend/config"
)

// Open connects to the configured database. Postgres connections go through
// lib/pq with the pool settings below; sqlite opens DB_PATH.
func Open(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	switch cfg.DBDriver {
	case "sqlite":
		logger.Info("opening sqlite database", zap.String("path", cfg.DBPath))
		db, err := gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("error opening database: %w", err)
		}
		return db, nil

	case "postgres":
		sslMode := cfg.DBSSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		connStr := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, sslMode,
		)

		// Log connection string (without password)
		logger.Info("connecting to database",
			zap.String("host", cfg.DBHost),
			zap.String("port", cfg.DBPort),
			zap.String("user", cfg.DBUser))

		sqlDB, err := sql.Open("postgres", connStr)
		if err != nil {
			return nil, fmt.Errorf("error opening database: %w", err)
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("error connecting to the database: %w", err)
		}

		db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
		if err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("error opening database: %w", err)
		}
		logger.Info("successfully connected to database")
		return db, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
}

// HealthCheck checks if the database is accessible
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
