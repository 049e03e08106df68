package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a Config
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks that the configuration is usable for its environment
// and the selected storage backend. All problems are reported together.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if cfg.ServerPort == "" {
		add("SERVER_PORT", "is required")
	}

	if cfg.JWTSecret == "" {
		switch cfg.Environment {
		case Production:
			add("JWT_SECRET", "jwt_secret secret is required")
		case CI:
			add("JWT_SECRET", "environment variable is required in CI environment")
		}
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBPath == "" {
			add("DB_PATH", "is required for the sqlite driver")
		}
	case "postgres":
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
			add("DB_HOST", "host, port and name are required for the postgres driver")
		}
	default:
		add("DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver))
	}

	switch cfg.StorageBackend {
	case StorageMemory, StorageGorm:
	case StorageRedis:
		if cfg.RedisURL == "" && cfg.RedisHost == "" {
			add("REDIS_HOST", "redis host or REDIS_URL is required for the redis backend")
		}
	case StorageS3:
		if cfg.S3BucketName == "" {
			add("S3_BUCKET_NAME", "is required for the s3 backend")
		}
	default:
		add("STORAGE_BACKEND", fmt.Sprintf("unsupported backend %q", cfg.StorageBackend))
	}

	if cfg.RateLimit < 0 {
		add("RATE_LIMIT", "must not be negative")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
