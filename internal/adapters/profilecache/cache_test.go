package profilecache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// fakeRunner records every invocation and serves canned responses keyed by
// the subcommand (args[2], after the two --extra-experimental-features
// tokens).
type fakeRunner struct {
	calls         [][]string
	rcOutput      []byte
	archiveOutput []byte
}

func (f *fakeRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string(nil), args...))
	switch args[2] {
	case "print-dev-env":
		return f.rcOutput, nil
	case "build":
		for i, a := range args {
			if a == "--out-link" && i+1 < len(args) {
				return nil, os.Symlink(args[len(args)-1], args[i+1])
			}
		}
		return nil, nil
	case "flake":
		if f.archiveOutput == nil {
			return []byte(`{}`), nil
		}
		return f.archiveOutput, nil
	}
	return nil, nil
}

func newLocalFlakeDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flake.nix"), []byte("{ }"), 0o644))
	return dir
}

func TestCacheUpdateLocalFlake(t *testing.T) {
	flakeDir := newLocalFlakeDir(t)
	cacheDir := t.TempDir()

	archive, err := json.Marshal(archiveNode{
		Path: "/nix/store/aaaa-root",
		Inputs: map[string]archiveNode{
			"nixpkgs": {Path: "/nix/store/bbbb-nixpkgs"},
		},
	})
	require.NoError(t, err)

	runner := &fakeRunner{rcOutput: []byte("export PATH=/nix/store/x/bin:$PATH\n"), archiveOutput: archive}
	factory := NewFactory(runner, nil)

	cache, err := factory.New(cacheDir, flakeDir, domain.Pure)
	require.NoError(t, err)

	needsUpdate, err := cache.NeedsUpdate()
	require.NoError(t, err)
	assert.True(t, needsUpdate)

	require.NoError(t, cache.Update(context.Background()))

	rc, err := os.ReadFile(cache.ProfileRC())
	require.NoError(t, err)
	assert.Contains(t, string(rc), "export PATH")

	inputsDir := filepath.Join(cacheDir, cache.(*Cache).hash, "flake-inputs")
	entries, err := os.ReadDir(inputsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "aaaa-root", entries[0].Name())
	assert.Equal(t, "bbbb-nixpkgs", entries[1].Name())

	needsUpdate, err = cache.NeedsUpdate()
	require.NoError(t, err)
	assert.False(t, needsUpdate, "a freshly updated cache entry should be fresh")
}

func TestCacheNeedsUpdateOnStaleWatchedFile(t *testing.T) {
	flakeDir := newLocalFlakeDir(t)
	cacheDir := t.TempDir()

	runner := &fakeRunner{rcOutput: []byte("export FOO=bar\n")}
	factory := NewFactory(runner, nil)
	cache, err := factory.New(cacheDir, flakeDir, domain.Pure)
	require.NoError(t, err)

	require.NoError(t, cache.Update(context.Background()))

	needsUpdate, err := cache.NeedsUpdate()
	require.NoError(t, err)
	require.False(t, needsUpdate)

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(flakeDir, "flake.nix"), future, future))

	needsUpdate, err = cache.NeedsUpdate()
	require.NoError(t, err)
	assert.True(t, needsUpdate)
}

func TestCacheImpureModePassesFlag(t *testing.T) {
	flakeDir := newLocalFlakeDir(t)
	cacheDir := t.TempDir()

	runner := &fakeRunner{rcOutput: []byte("export FOO=bar\n")}
	factory := NewFactory(runner, nil)
	cache, err := factory.New(cacheDir, flakeDir, domain.Impure)
	require.NoError(t, err)

	require.NoError(t, cache.Update(context.Background()))

	require.NotEmpty(t, runner.calls)
	for _, call := range runner.calls {
		assert.Contains(t, call, "--impure", "impure mode must add --impure to every nix invocation")
	}
}
