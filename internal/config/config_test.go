package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "STYRING_BACKEND_URL", "STYRING_HTTP_TIMEOUT_MS", "STYRING_LOG_CALLS", "STYRING_DEVSERVER_ADDR")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout())
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, ":8000", cfg.DevServerAddr)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STYRING_BACKEND_URL", "https://styring.example.no/api/ ")
	t.Setenv("STYRING_HTTP_TIMEOUT_MS", "2500")
	t.Setenv("STYRING_LOG_CALLS", "true")
	t.Setenv("STYRING_DB", "/tmp/styring-test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://styring.example.no/api", cfg.BackendURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.HTTPTimeout())
	assert.True(t, cfg.LogCalls)

	path, err := cfg.SessionDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/styring-test.db", path)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("STYRING_HTTP_TIMEOUT_MS", "not-a-number")
	_, err := Load()
	assert.ErrorContains(t, err, "parse env:")

	t.Setenv("STYRING_HTTP_TIMEOUT_MS", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "must be >= 0")
}

func TestSessionDBPath_DefaultsUnderXDGData(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cfg := Config{}
	path, err := cfg.SessionDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "styring", "session.db"), path)
}

func TestNormalizeBackendURL(t *testing.T) {
	assert.Equal(t, DefaultBackendURL, NormalizeBackendURL("   "))
	assert.Equal(t, "http://h:1", NormalizeBackendURL("http://h:1///"))
}

// unsetEnv clears variables for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
