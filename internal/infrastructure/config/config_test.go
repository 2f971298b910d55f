package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite
  path: /tmp/test.db
subscription:
  trial_days: 14
`)

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, 14, cfg.Subscription.TrialDays)
	assert.Equal(t, "free", cfg.Subscription.DefaultPlan)
	assert.Equal(t, 12, cfg.Auth.Password.BcryptCost)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("VPNDASH_SERVER_PORT", "7070")
	t.Setenv("VPNDASH_AUTH_JWT_SECRET", "from-env")

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Auth.JWT.Secret)
}

func TestLoad_ReleaseRequiresSecret(t *testing.T) {
	path := writeConfig(t, "server:\n  mode: release\n")

	_, err := Load("", path)
	assert.Error(t, err)
}

func TestLoad_EnvArgumentSetsMode(t *testing.T) {
	path := writeConfig(t, "auth:\n  jwt:\n    secret: s3cret\n")

	cfg, err := Load("release", path)
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_UnknownDriver(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: postgres\n")

	_, err := Load("", path)
	assert.Error(t, err)
}
