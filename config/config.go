// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	API      APIConfig
	Log      LogConfig
	Session  SessionConfig
	Redis    RedisConfig
	Refresh  RefreshConfig
	Snapshot SnapshotConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

// APIConfig holds the financial service client configuration.
type APIConfig struct {
	BaseURL          string
	Timeout          time.Duration
	TransactionLimit int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// SessionConfig holds credential persistence configuration.
type SessionConfig struct {
	Store    string // "memory" or "redis"
	TokenKey string
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// RefreshConfig holds background refresh configuration.
type RefreshConfig struct {
	Enabled  bool
	Schedule string
}

// SnapshotConfig holds state snapshot cache configuration.
type SnapshotConfig struct {
	Enabled bool
	Key     string
	TTL     time.Duration
}

// ServerConfig holds the ledger service's HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string

	// LoginRateLimit is the number of login attempts allowed per client IP
	// per minute. Zero disables limiting.
	LoginRateLimit int
	BcryptCost     int
}

// DatabaseConfig holds the ledger service's database configuration. URLs with
// a postgres scheme select PostgreSQL; anything else is a SQLite DSN.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// IsPostgres reports whether URL points to PostgreSQL.
func (c DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgres://") || strings.HasPrefix(c.URL, "postgresql://")
}

// JWTConfig holds the ledger service's token configuration.
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:          getEnv("FINANCE_API_URL", "http://localhost:8000"),
			Timeout:          getEnvAsDuration("FINANCE_API_TIMEOUT", 30*time.Second),
			TransactionLimit: getEnvAsInt("FINANCE_TRANSACTION_LIMIT", 50),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			Store:    getEnv("SESSION_STORE", "memory"),
			TokenKey: getEnv("SESSION_TOKEN_KEY", "finance:session:token"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Refresh: RefreshConfig{
			Enabled:  getEnvAsBool("REFRESH_ENABLED", true),
			Schedule: getEnv("REFRESH_SCHEDULE", "@every 5m"),
		},
		Snapshot: SnapshotConfig{
			Enabled: getEnvAsBool("SNAPSHOT_ENABLED", false),
			Key:     getEnv("SNAPSHOT_KEY", "finance:snapshot"),
			TTL:     getEnvAsDuration("SNAPSHOT_TTL", 24*time.Hour),
		},
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8000),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),

			LoginRateLimit: getEnvAsInt("LOGIN_RATE_LIMIT", 5),
			BcryptCost:     getEnvAsInt("BCRYPT_COST", 12),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", "file:finance?mode=memory&cache=shared"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "change-me-in-production"),
			AccessTokenExpiry: getEnvAsDuration("JWT_EXPIRY", 30*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// SlogLevel maps Level to a slog level. Unknown values mean info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
