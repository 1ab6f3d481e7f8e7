package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verdant/internal/types"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gateway.Model)
	assert.Equal(t, types.LanguageEnglish, cfg.LanguageCode())
	assert.GreaterOrEqual(t, cfg.Watch.Workers, 1)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
language: bn
gateway:
  api_key: test-key
  model: gemini-2.5-pro
store:
  database_path: /tmp/verdant-test.db
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.LanguageBengali, cfg.LanguageCode())
	assert.Equal(t, "test-key", cfg.Gateway.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gateway.Model)
	assert.Equal(t, "/tmp/verdant-test.db", cfg.Store.DatabasePath)
}

func TestEnvOverridesWin(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("VERDANT_LANG", "bn")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Gateway.APIKey)
	assert.Equal(t, types.LanguageBengali, cfg.LanguageCode())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.Gateway.Model = "gemini-2.5-pro"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", got.Gateway.Model)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gateway.APIKey = ""
	assert.Error(t, cfg.Validate())

	cfg.Gateway.APIKey = "k"
	assert.NoError(t, cfg.Validate())
}

func TestGatewayTimeoutFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gateway.Timeout = "not a duration"
	assert.Equal(t, "2m0s", cfg.GatewayTimeout().String())
}
