package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir()) // sin .env ni config.env

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "finrep", cfg.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.Report.SectionTimeout)
	assert.Equal(t, 8, cfg.Report.MaxParallel)
	assert.True(t, cfg.Report.AllowPartial)
	assert.False(t, cfg.App.IsProduction())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REPORT_SECTION_TIMEOUT", "1500ms")
	t.Setenv("REPORT_ALLOW_PARTIAL", "false")
	t.Setenv("AI_PROVIDER", "Gemini")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 1500*time.Millisecond, cfg.Report.SectionTimeout)
	assert.False(t, cfg.Report.AllowPartial)
	assert.Equal(t, "gemini", cfg.AI.Provider)
}

func TestLoad_MaxParallelInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("REPORT_MAX_PARALLEL", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AllowPartialMalFormado(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("REPORT_ALLOW_PARTIAL", "flase")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_ALLOW_PARTIAL")
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/w", DBName: "finrep", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fw@db:5432/finrep?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
