package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeDefault(t *testing.T) {
	t.Setenv(EnvMode, "")
	assert.Equal(t, DefaultMode, Mode())
}

func TestModeFromEnv(t *testing.T) {
	t.Setenv(EnvMode, "production")
	assert.Equal(t, "production", Mode())
}

func TestServerTiming(t *testing.T) {
	cases := map[string]bool{
		"":       false,
		"true":   true,
		"1":      true,
		"false":  false,
		"0":      false,
		"banana": false,
	}
	for in, want := range cases {
		t.Setenv(EnvServerTiming, in)
		assert.Equal(t, want, ServerTiming(), "value %q", in)
	}
}

func TestLoadEnvMissingFileIsFine(t *testing.T) {
	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadEnvReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvMode+"=from-dotenv\n"), 0o600))
	t.Setenv(EnvMode, "")
	os.Unsetenv(EnvMode)

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "from-dotenv", Mode())
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"name": "demo", "debug": true},
		"server": {"host": "127.0.0.1", "port": 9090}
	}`), 0o600))

	var cfg Config
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, "demo", cfg.App.Name)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadMissingFile(t *testing.T) {
	var cfg Config
	assert.Error(t, Load(filepath.Join(t.TempDir(), "nope.json"), &cfg))
}
