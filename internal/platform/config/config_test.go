package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost:5432/arp")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "10-M", cfg.RateLimit)
	assert.Equal(t, int64(20), cfg.MaxUploadSizeMB)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.False(t, cfg.IsProduction)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://db/arp")
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "production-secret-of-decent-length")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "5")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, int64(5), cfg.MaxUploadSizeMB)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing database url", env: map[string]string{"PGSQL_URL": ""}},
		{name: "non numeric port", env: map[string]string{"PORT": "http"}},
		{name: "short secret", env: map[string]string{"JWT_SECRET": "short"}},
		{name: "zero upload size", env: map[string]string{"MAX_UPLOAD_SIZE_MB": "0"}},
		{name: "default secret in production", env: map[string]string{"IS_PRODUCTION": "true"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PGSQL_URL", "postgres://db/arp")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := load(viper.New())
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
