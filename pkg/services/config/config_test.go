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
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8090", cfg.Addr)
	assert.Equal(t, "explify.db", cfg.DBPath)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfigEnvOverridesEveryField(t *testing.T) {
	t.Setenv("EXPLIFY_ADDR", ":9999")
	t.Setenv("EXPLIFY_DB_PATH", "/tmp/other.db")
	t.Setenv("EXPLIFY_GEMINI_API_KEY", "key-from-env")
	t.Setenv("EXPLIFY_GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("EXPLIFY_SHUTDOWN_TIMEOUT", "15s")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, "key-from-env", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfigEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7000\"\ngemini_api_key: key-from-file\n"), 0o600))

	t.Setenv("EXPLIFY_GEMINI_API_KEY", "key-from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "key-from-env", cfg.GeminiAPIKey)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
