package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.PlanLimits.Free)
	assert.Equal(t, 50, cfg.PlanLimits.Basic)
	assert.Equal(t, 500, cfg.PlanLimits.Pro)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.DebugMode)
}

func TestLoadFromFile(t *testing.T) {
	ws := t.TempDir()
	dir := filepath.Join(ws, ".brandstudio")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{
		"caption_model": "gemini-custom",
		"plan_limits": {"free": 10, "basic": 100, "pro": 1000},
		"logging": {"debug_mode": true, "level": "debug"}
	}`), 0644))

	cfg, err := Load(ws)
	require.NoError(t, err)

	assert.Equal(t, "gemini-custom", cfg.CaptionModel)
	assert.Equal(t, 10, cfg.PlanLimits.Free)
	assert.Equal(t, 1000, cfg.PlanLimits.Pro)
	assert.True(t, cfg.Logging.DebugMode)

	limits := cfg.Limits()
	assert.Equal(t, 100, limits.Basic)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key-123")
	t.Setenv(EnvCaptionModel, "gemini-env-model")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "test-key-123", cfg.APIKey)
	assert.Equal(t, "gemini-env-model", cfg.CaptionModel)
}

func TestDotEnvFile(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ws, ".env"), []byte("GEMINI_API_KEY=from-dotenv\n"), 0644))
	// godotenv does not override an existing variable.
	t.Setenv(EnvAPIKey, "")
	os.Unsetenv(EnvAPIKey)

	cfg, err := Load(ws)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.APIKey)
}

func TestAPIKeyNeverSerialized(t *testing.T) {
	ws := t.TempDir()
	path, err := WriteDefault(ws)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "api_key")

	// Second call is a no-op.
	again, err := WriteDefault(ws)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestBrokenLimitsRepaired(t *testing.T) {
	ws := t.TempDir()
	dir := filepath.Join(ws, ".brandstudio")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"plan_limits": {"free": 0, "basic": -1}}`), 0644))

	cfg, err := Load(ws)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.PlanLimits.Free)
	assert.Equal(t, 50, cfg.PlanLimits.Basic)
	assert.Equal(t, 500, cfg.PlanLimits.Pro)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	ws := t.TempDir()
	_, err := WriteDefault(ws)
	require.NoError(t, err)

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(ws, func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	require.NoError(t, err)
	w.debounceDur = 0
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(Path(ws),
		[]byte(`{"plan_limits": {"free": 7, "basic": 70, "pro": 700}}`), 0644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 7, cfg.PlanLimits.Free)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload within 5s")
	}
}
