package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Equal(t, DefaultAppConfig.Web.Port, cfg.Web.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
}

func TestLoadConfigYamlOverride(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "shopcore.yml")
	data := []byte("web:\n  port: 9090\n  jwt_secret: yaml-secret\n")
	require.NoError(t, os.WriteFile(cfile, data, 0o644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "yaml-secret", cfg.Web.JwtSecret)
	// untouched sections keep their defaults
	assert.Equal(t, DefaultAppConfig.Database.Port, cfg.Database.Port)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SHOPCORE_WEB_PORT", "8088")
	t.Setenv("SHOPCORE_DB_HOST", "db.internal")
	t.Setenv("SHOPCORE_SYSTEM_DEBUG", "false")

	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Equal(t, 8088, cfg.Web.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.False(t, cfg.System.Debug)
}

func TestTokenDurations(t *testing.T) {
	cfg := &AppConfig{}
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenDuration())
	assert.Equal(t, 24*time.Hour, cfg.RefreshTokenDuration())

	cfg.Web.AccessTTL = 5
	cfg.Web.RefreshTTL = 48
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenDuration())
	assert.Equal(t, 48*time.Hour, cfg.RefreshTokenDuration())
}
