package wiring_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envoluntary/envoluntary/internal/wiring"
)

func TestResolverUsesExplicitConfigPathOverXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := &wiring.Container{}
	r, err := c.Resolver("/explicit/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "/explicit/config.toml", r.ConfigPath())
}

func TestResolverFallsBackToXDGConfigHome(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	c := &wiring.Container{}
	r, err := c.Resolver("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, wiring.CLIName, "config.toml"), r.ConfigPath())
}

func TestCacheDirUsesExplicitOverrideOverXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := &wiring.Container{}
	dir, err := c.CacheDir("/explicit/cache")
	require.NoError(t, err)
	assert.Equal(t, "/explicit/cache", dir)
}

func TestCacheDirFallsBackToXDGCacheHome(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	c := &wiring.Container{}
	dir, err := c.CacheDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, wiring.CLIName), dir)
}

func TestEmitterResolvesEverySupportedShell(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "json", "nushell"} {
		t.Run(shell, func(t *testing.T) {
			emitter, err := wiring.Emitter(shell)
			require.NoError(t, err)
			assert.NotNil(t, emitter)
		})
	}
}

func TestEmitterRejectsUnsupportedShell(t *testing.T) {
	_, err := wiring.Emitter("powershell")
	assert.Error(t, err)
}

func TestNewBuildsAFullyWiredContainer(t *testing.T) {
	c := wiring.New()
	require.NotNil(t, c)
	assert.NotNil(t, c.Logger)
	assert.NotNil(t, c.Editor)
	assert.NotNil(t, c.VersionProbe)
	assert.NotNil(t, c.CacheFactory)
	assert.NotNil(t, c.Harvester)
	assert.NotNil(t, c.Telemetry)
}
