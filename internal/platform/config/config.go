package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultJWTSecret    = "a-very-secret-key-should-be-longer-and-random"
	defaultLockTimeout  = 5 * time.Second
	defaultTierCacheTTL = 10 * time.Minute
	defaultRateLimit    = "120-M"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	JWTIssuer       string
	LogLevel        slog.Level
	MigrationsPath  string
	FrontendBaseURL string

	// LockTimeout bounds how long a transfer waits for a wallet row lock.
	LockTimeout time.Duration

	// RedisURL is optional; without it fee schedules are read straight from PostgreSQL.
	RedisURL     string
	TierCacheTTL time.Duration

	// RateLimit uses the limiter format "<limit>-<period>", e.g. "120-M".
	RateLimit limiter.Rate
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("LOCK_TIMEOUT", defaultLockTimeout.String())
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("TIER_CACHE_TTL", defaultTierCacheTTL.String())
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		RedisURL:        v.GetString("REDIS_URL"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET environment variable not set, using default insecure key")
	}

	cfg.LogLevel = parseLogLevel(v.GetString("LOG_LEVEL"))
	cfg.LockTimeout = parseDuration("LOCK_TIMEOUT", v.GetString("LOCK_TIMEOUT"), defaultLockTimeout)
	cfg.TierCacheTTL = parseDuration("TIER_CACHE_TTL", v.GetString("TIER_CACHE_TTL"), defaultTierCacheTTL)

	rateStr := v.GetString("RATE_LIMIT")
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT, using default", slog.String("value", rateStr), slog.String("default", defaultRateLimit))
		rate, _ = limiter.NewRateFromFormatted(defaultRateLimit)
	}
	cfg.RateLimit = rate

	return cfg, nil
}

// parseDuration falls back to def when raw is not a positive duration.
func parseDuration(key, raw string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration, using default",
			slog.String("key", key), slog.String("value", raw), slog.String("default", def.String()))
		return def
	}
	return d
}

func parseLogLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		slog.Warn("Invalid LOG_LEVEL, using info", slog.String("value", raw))
		return slog.LevelInfo
	}
	return level
}
