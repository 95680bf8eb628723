package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600))
	return dir
}

func TestLoad_ReadsFileAndDefaults(t *testing.T) {
	dir := writeConfig(t, `
database:
  user: venue
  name: venue
jwt:
  secret_key: file-secret
  access_ttl: 15m
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "venue", cfg.Database.User)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "file-secret", cfg.JWT.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, []string{"/api/v1/dashboard"}, cfg.Gate.ProtectedPrefixes)
	assert.Equal(t, "admin", cfg.Gate.PrivilegedRole)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, time.Hour, cfg.Ledger.PurgeInterval)
	assert.Equal(t, 24*time.Hour, cfg.Ledger.Retention)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, `
jwt:
  secret_key: file-secret
`)
	t.Setenv("JWT_SECRET_KEY", "env-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LEDGER_RETENTION", "48h")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.SecretKey)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 48*time.Hour, cfg.Ledger.Retention)
}

func TestLoad_MissingSecret(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: \"8080\"\n")

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_NoFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "only-env")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "only-env", cfg.JWT.SecretKey)
}
