package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL        string   `mapstructure:"PGSQL_URL" validate:"required"`
	Port               string   `mapstructure:"PORT" validate:"required,numeric"`
	IsProduction       bool     `mapstructure:"IS_PRODUCTION"`
	EnableDBCheck      bool     `mapstructure:"ENABLE_DB_CHECK"`
	JWTSecret          string   `mapstructure:"JWT_SECRET" validate:"required,min=16"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS" validate:"min=1,dive,required"`
	// RateLimit is a ulule/limiter rate such as "10-M".
	RateLimit       string `mapstructure:"RATE_LIMIT" validate:"required"`
	MaxUploadSizeMB int64  `mapstructure:"MAX_UPLOAD_SIZE_MB" validate:"gt=0,lte=1024"`
	MigrationsPath  string `mapstructure:"MIGRATIONS_PATH" validate:"required"`
	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
}

// MaxUploadBytes is the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadSizeMB << 20
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "10-M")
	v.SetDefault("MAX_UPLOAD_SIZE_MB", 20)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:          v.GetString("RATE_LIMIT"),
		MaxUploadSizeMB:    v.GetInt64("MAX_UPLOAD_SIZE_MB"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		PosthogAPIKey:      v.GetString("POSTHOG_API_KEY"),
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// splitList reads a comma separated setting.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
