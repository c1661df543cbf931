package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsConfigPath(t *testing.T) {
	xdgConfigHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdgConfigHome)

	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"envoluntary", "config", "print-path"}

	require.NoError(t, run())
}

func TestRunPropagatesUnknownCommandError(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"envoluntary", "not-a-real-command"}

	assert.Error(t, run())
}

func TestRunResolvesCachePathUnderExplicitCacheDir(t *testing.T) {
	cacheDir := t.TempDir()

	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{
		"envoluntary", "shell", "print-cache-path",
		"--cache-dir", cacheDir,
		"--flake-reference", "github:owner/repo",
	}

	require.NoError(t, run())
	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "print-cache-path must not create or touch the cache directory")
}
