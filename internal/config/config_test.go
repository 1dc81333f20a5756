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
	path := filepath.Join(t.TempDir(), "pizzeria.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9091", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "chef@pizza.fr", cfg.Operator.Email)
	assert.Equal(t, "@every 5m", cfg.Storage.Autosave)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
http:
  addr: ":8080"
  shutdown_timeout: 10s
log:
  level: debug
operator:
  email: luigi@pizza.fr
  password: s3cret
storage:
  snapshot: /var/lib/pizzeria/state.yaml
  autosave: ""
password_cost: 4
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "luigi@pizza.fr", cfg.Operator.Email)
	// незаданные поля сохраняют значения по умолчанию
	assert.Equal(t, "Mario", cfg.Operator.FirstName)
	assert.Empty(t, cfg.Storage.Autosave)
	assert.Equal(t, 4, cfg.PasswordCost)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "http:\n  addr: \":8080\"\n")
	t.Setenv("PIZZERIA_ADDR", ":7070")
	t.Setenv("PIZZERIA_LOG_LEVEL", "warn")
	t.Setenv("PIZZERIA_SNAPSHOT", "")
	t.Setenv("PIZZERIA_AUTOSAVE", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Storage.Snapshot)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "http: [not, a, map]"))
	assert.Error(t, err)

	t.Setenv("PIZZERIA_PASSWORD_COST", "high")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.HTTP.Addr = ""
	cfg.Operator.Password = ""
	cfg.PasswordCost = 99
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http.addr")
	assert.Contains(t, err.Error(), "operator credentials")
	assert.Contains(t, err.Error(), "password_cost")

	cfg = Default()
	cfg.Storage.Snapshot = ""
	assert.ErrorContains(t, cfg.Validate(), "autosave")
}
