package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavadevv/timeable-api/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.Empty(t, cfg.Server.AllowedOrigins)

	assert.Equal(t, "https://daotao.vnua.edu.vn", cfg.Upstream.BaseURL)
	assert.Equal(t, "/api/auth/login", cfg.Upstream.LoginPath)
	assert.Equal(t, "/api/sch/w-locdshockytkbuser", cfg.Upstream.TermPath)
	assert.Equal(t, "/api/sch/w-locdshockytkbuser-phu", cfg.Upstream.TermFallbackPath)
	assert.Equal(t, "/api/sch/w-loctkbtuanusertheohocky", cfg.Upstream.SchedulePath)
	assert.Equal(t, "/api/sch/w-loctkbtuanusertheohocky-phu", cfg.Upstream.ScheduleFallbackPath)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 100, cfg.Logging.MaxSizeMB)

	assert.Equal(t, "timeable-api", cfg.Observability.ServiceName)
	assert.False(t, cfg.Profiling.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "development")
	t.Setenv("UPSTREAM_BASE_URL", "https://staging.daotao.example.edu.vn")
	t.Setenv("UPSTREAM_TERM_PATH", "/api/custom/terms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.AppEnv)
	assert.Equal(t, "https://staging.daotao.example.edu.vn", cfg.Upstream.BaseURL)
	assert.Equal(t, "/api/custom/terms", cfg.Upstream.TermPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_AllowedOriginsParsing(t *testing.T) {
	t.Setenv("ALLOWED_CORS_ORIGINS", "https://app.example.com, https://admin.example.com ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
}

func TestEnvironmentPredicates(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{AppEnv: "development"}}
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Server.AppEnv = "production"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}
