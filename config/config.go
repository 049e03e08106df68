package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends for the per-user recipe and favorites blobs
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageGorm   = "gorm"
	StorageS3     = "s3"
)

const devJWTSecret = "recipebox-dev-secret"

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Database configuration (users, sessions and the gorm storage backend)
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Recipe storage configuration
	StorageBackend string
	S3BucketName   string
	S3Prefix       string
	AWSRegion      string

	// RateLimit is the number of recipe writes allowed per user per hour.
	// Zero disables rate limiting.
	RateLimit int
}

// LoadConfig creates a new Config from environment variables, overlaid with
// Docker secrets for the sensitive values, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	env := GetEnvironment()
	cfg := &Config{
		Environment:    env,
		ServerPort:     v.GetString("SERVER_PORT"),
		ServerHost:     v.GetString("SERVER_HOST"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DBPath:         v.GetString("DB_PATH"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSL_MODE"),
		RedisHost:      v.GetString("REDIS_HOST"),
		RedisPort:      v.GetString("REDIS_PORT"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RedisDB:        v.GetInt("REDIS_DB"),
		RedisURL:       v.GetString("REDIS_URL"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		StorageBackend: strings.ToLower(v.GetString("STORAGE_BACKEND")),
		S3BucketName:   v.GetString("S3_BUCKET_NAME"),
		S3Prefix:       v.GetString("S3_PREFIX"),
		AWSRegion:      v.GetString("AWS_REGION"),
		RateLimit:      v.GetInt("RATE_LIMIT"),
	}

	// CI only uses environment variables; everywhere else secrets win
	if env != CI {
		overlaySecrets(cfg)
	}
	if cfg.JWTSecret == "" && (env == Development || env == Test) {
		cfg.JWTSecret = devJWTSecret
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "recipebox.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "recipebox")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("STORAGE_BACKEND", StorageGorm)
	v.SetDefault("S3_PREFIX", "recipebox")
	v.SetDefault("RATE_LIMIT", 0)
}

func overlaySecrets(cfg *Config) {
	if s := readSecret("jwt_secret"); s != "" {
		cfg.JWTSecret = s
	}
	if s := readSecret("db_password"); s != "" {
		cfg.DBPassword = s
	}
	if s := readSecret("redis_password"); s != "" {
		cfg.RedisPassword = s
	}
	if s := readSecret("redis_url"); s != "" {
		cfg.RedisURL = s
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
