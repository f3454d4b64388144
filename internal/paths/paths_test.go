package paths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDir_FlagWins(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	got, err := ResolveConfigDir("/flag/config")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/flag/config"), got)
}

func TestResolveConfigDir_EnvBeatsDefault(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	got, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/env/config"), got)
}

func TestResolveDataDir_Precedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	got, err := ResolveDataDir("/flag/data", "/yaml/data")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/flag/data"), got)

	got, err = ResolveDataDir("", "/yaml/data")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/yaml/data"), got)

	got, err = ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/env/data"), got)
}

func TestDefaultDirs_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only layout")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	cfg, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/config/agripos", cfg)

	data, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/data/agripos/data", data)
}

func TestDefaultConfigDir_HomeFallback(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only layout")
	}
	t.Setenv("XDG_CONFIG_HOME", "")

	orig := platformDir.homeDir
	platformDir.homeDir = func() (string, error) { return "/home/tester", nil }
	t.Cleanup(func() { platformDir.homeDir = orig })

	cfg, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.config/agripos", cfg)
}
