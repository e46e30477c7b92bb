package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config, err := NewConfig("")
	require.NoError(t, err)

	assert.Equal(t, "5000", config.Server.Port)
	assert.Equal(t, 5*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, "layout.png", config.Storage.Filename)
	assert.Equal(t, "memory", config.Store.Driver)
	assert.Equal(t, 10, config.Render.HalfWidth)
	assert.Equal(t, 3, config.Render.StrokeWidth)
	assert.Equal(t, "ff0000", config.Render.Color)
	assert.True(t, config.Tunnel.Enabled)
	assert.Equal(t, filepath.Join(".", "layout.png"), config.ImagePath())
}

func TestNewConfigFromYaml(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  port: "8080"
  read_timeout: 2s
storage:
  directory: /tmp/floormark
store:
  driver: sqlite
render:
  half_width: 12
  color: "00ff00"
tunnel:
  enabled: false
log:
  level: debug
  format: json
`)
	config, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 2*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, config.Server.WriteTimeout, "defaults are kept for missing keys")
	assert.Equal(t, "/tmp/floormark/layout.png", config.ImagePath())
	assert.Equal(t, "sqlite", config.Store.Driver)
	assert.Equal(t, 12, config.Render.HalfWidth)
	assert.Equal(t, 3, config.Render.StrokeWidth)
	assert.Equal(t, "00ff00", config.Render.Color)
	assert.False(t, config.Tunnel.Enabled)
	assert.Equal(t, "json", config.Log.Format)
}

func TestNewConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DIR", "/data")
	t.Setenv("MARK_STORE", "sqlite")
	t.Setenv("NGROK_AUTH_TOKEN", "secret")

	path := writeFile(t, "config.yaml", "server:\n  port: \"8080\"\n")
	config, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", config.Server.Port)
	assert.Equal(t, "/data", config.Storage.Directory)
	assert.Equal(t, "sqlite", config.Store.Driver)
	assert.Equal(t, "secret", config.Tunnel.Authtoken)
}

func TestNewConfigErrors(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "broken.yaml", "server: [unterminated")
	_, err = NewConfig(path)
	assert.Error(t, err)
}

func TestResolveConfigPath(t *testing.T) {
	path := writeFile(t, "config.yaml", "")
	resolved, err := ResolveConfigPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)

	_, err = ResolveConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ResolveConfigPath(t.TempDir())
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "FLOORMARK_DOTENV_TEST"
	path := writeFile(t, ".env", key+"=from-dotenv\n")
	t.Cleanup(func() { os.Unsetenv(key) })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv(key))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() {
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{})
	})

	config := DefaultConfig()
	config.Log.Level = "warn"
	require.NoError(t, SetupLogging(config, false))
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	require.NoError(t, SetupLogging(config, true))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	config.Log.Format = "json"
	require.NoError(t, SetupLogging(config, false))
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	config.Log.Format = "xml"
	assert.Error(t, SetupLogging(config, false))

	config.Log.Format = "text"
	config.Log.Level = "loud"
	assert.Error(t, SetupLogging(config, false))
}

func TestNewConfigEmptyFile(t *testing.T) {
	config, err := NewConfig(writeFile(t, "config.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Server.Port, config.Server.Port)
}
