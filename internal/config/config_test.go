package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 8, cfg.Generator.Letters)
	assert.Equal(t, 2, cfg.Generator.Symbols)
	assert.Equal(t, 2, cfg.Generator.Numbers)
	assert.Equal(t, 60.0, cfg.Generator.MinEntropyBits)
	assert.Equal(t, 100, cfg.Generator.MaxAttempts)
	assert.True(t, cfg.Generator.ExcludeAmbiguous)
	assert.False(t, cfg.Audit.Enabled)
	assert.True(t, cfg.Security.RateLimiting.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entropass.yaml")
	content := `
generator:
  letters: 10
  min_entropy_bits: 72.5
  exclude_ambiguous: false
  weak_passwords: ["hunter2", "trustno1"]
audit:
  enabled: true
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Generator.Letters)
	assert.Equal(t, 2, cfg.Generator.Symbols)
	assert.Equal(t, 72.5, cfg.Generator.MinEntropyBits)
	assert.False(t, cfg.Generator.ExcludeAmbiguous)
	assert.Equal(t, []string{"hunter2", "trustno1"}, cfg.Generator.WeakPasswords)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENTROPASS_GENERATOR_NUMBERS", "5")
	t.Setenv("ENTROPASS_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Generator.Numbers)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", c.DSN())
}
