package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/philly/inkwell/internal/platform/logger"
)

type Config struct {
	DatabaseURL            string        `mapstructure:"DATABASE_URL"`
	SupabaseURL            string        `mapstructure:"SUPABASE_URL"`
	SupabaseServiceRoleKey string        `mapstructure:"SUPABASE_SERVICE_ROLE_KEY"`
	JWKSEndpoint           string        `mapstructure:"JWKS_ENDPOINT"` // defaults to <SUPABASE_URL>/auth/v1/.well-known/jwks.json
	JWTIssuer              string        `mapstructure:"JWT_ISSUER"`    // defaults to <SUPABASE_URL>/auth/v1
	StorageBucket          string        `mapstructure:"STORAGE_BUCKET"`
	ServerAddress          string        `mapstructure:"SERVER_ADDRESS"`
	Environment            string        `mapstructure:"ENVIRONMENT"`
	LogLevel               string        `mapstructure:"LOG_LEVEL"` // Logging level (debug, info, warn, error)
	RedisURL               string        `mapstructure:"REDIS_URL"` // empty disables the category cache
	CategoryCacheTTL       time.Duration `mapstructure:"CATEGORY_CACHE_TTL"`
	IdentityCacheSize      int           `mapstructure:"IDENTITY_CACHE_SIZE"`
	RateLimitRPS           float64       `mapstructure:"RATE_LIMIT_RPS"` // 0 disables rate limiting
	RateLimitBurst         int           `mapstructure:"RATE_LIMIT_BURST"`
	SeedOnStart            bool          `mapstructure:"SEED_ON_START"`
}

func LoadConfig(bootstrapLogger *logger.BootstrapLogger) (Config, error) {
	ctx := context.Background()

	// A missing .env file is fine; the environment alone can carry everything.
	if err := godotenv.Load(); err != nil {
		bootstrapLogger.Info(ctx, "no .env file found, using environment variables only")
	} else {
		bootstrapLogger.Info(ctx, "loaded .env file")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		bootstrapLogger.Error(ctx, "failed to unmarshal configuration", "error", err)
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	config.applyDerived()

	bootstrapLogger.Info(ctx, "configuration loaded",
		"environment", config.Environment,
		"log_level", config.LogLevel,
		"server_address", config.ServerAddress,
		"redis_enabled", config.RedisURL != "",
		"rate_limit_rps", config.RateLimitRPS,
	)

	if err := config.Validate(); err != nil {
		bootstrapLogger.Error(ctx, "configuration validation failed", "error", err)
		return Config{}, err
	}

	bootstrapLogger.Info(ctx, "configuration validated successfully")
	return config, nil
}

func setDefaults(v *viper.Viper) {
	// Every key needs a default or AutomaticEnv never sees it during Unmarshal.
	v.SetDefault("DATABASE_URL", "postgresql://localhost:5432/inkwell?sslmode=disable")
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_SERVICE_ROLE_KEY", "")
	v.SetDefault("JWKS_ENDPOINT", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("STORAGE_BUCKET", "blog-images")
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CATEGORY_CACHE_TTL", "5m")
	v.SetDefault("IDENTITY_CACHE_SIZE", 1024)
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("SEED_ON_START", true)
}

func (c *Config) applyDerived() {
	base := strings.TrimRight(c.SupabaseURL, "/")
	if base == "" {
		return
	}
	if c.JWKSEndpoint == "" {
		c.JWKSEndpoint = base + "/auth/v1/.well-known/jwks.json"
	}
	if c.JWTIssuer == "" {
		c.JWTIssuer = base + "/auth/v1"
	}
}

// Validate checks what every command needs. Serving additionally needs the
// token settings, see ValidateServe.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.IdentityCacheSize <= 0 {
		return errors.New("IDENTITY_CACHE_SIZE must be positive")
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}
	return nil
}

func (c Config) ValidateServe() error {
	if c.JWKSEndpoint == "" {
		return errors.New("JWKS_ENDPOINT is required (or set SUPABASE_URL)")
	}
	if c.JWTIssuer == "" {
		return errors.New("JWT_ISSUER is required (or set SUPABASE_URL)")
	}
	if c.SupabaseURL == "" || c.SupabaseServiceRoleKey == "" {
		return errors.New("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required")
	}
	return nil
}
