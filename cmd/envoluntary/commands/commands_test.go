package commands_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envoluntary/envoluntary/cmd/envoluntary/commands"
	"github.com/envoluntary/envoluntary/internal/core/domain"
	"github.com/envoluntary/envoluntary/internal/core/ports"
	"github.com/envoluntary/envoluntary/internal/wiring"
)

type fakeEditor struct {
	program, path string
	err           error
}

func (f *fakeEditor) Launch(program, path string) error {
	f.program, f.path = program, path
	return f.err
}

type fakeVersionProbe struct {
	err error
}

func (f *fakeVersionProbe) CheckVersion(context.Context) error { return f.err }

type fakeCache struct {
	rc string
}

func (c *fakeCache) NeedsUpdate() (bool, error)   { return false, nil }
func (c *fakeCache) Update(context.Context) error { return nil }
func (c *fakeCache) ProfileRC() string            { return c.rc }

type fakeCacheFactory struct{}

func (fakeCacheFactory) New(_, flakeRef string, _ domain.EvaluationMode) (ports.ProfileCache, error) {
	return &fakeCache{rc: flakeRef + ".rc"}, nil
}

type fakeHarvester struct{}

func (fakeHarvester) HarvestFile(_ context.Context, _ string, seed *domain.EnvVars) (*domain.EnvVars, error) {
	return seed.Clone(), nil
}

func (fakeHarvester) HarvestScript(context.Context, string, *domain.EnvVars) (*domain.EnvVars, error) {
	return nil, nil
}

func newTestCLI() (*commands.CLI, *fakeEditor, *fakeVersionProbe) {
	editor := &fakeEditor{}
	probe := &fakeVersionProbe{}
	container := &wiring.Container{
		Editor:       editor,
		VersionProbe: probe,
		CacheFactory: fakeCacheFactory{},
		Harvester:    fakeHarvester{},
	}
	return commands.New(container), editor, probe
}

func runCLI(t *testing.T, cli *commands.CLI, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli.SetArgs(args)
	cli.SetOut(&out)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestConfigPrintPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cli, _, _ := newTestCLI()

	out, err := runCLI(t, cli, "config", "print-path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, wiring.CLIName, "config.toml")+"\n", out)
}

func TestConfigAddEntryThenPrintMatchingEntries(t *testing.T) {
	cli, _, _ := newTestCLI()
	configPath := filepath.Join(t.TempDir(), "config.toml")

	_, err := runCLI(t, cli, "config", "add-entry", "--config-path", configPath, "/home/user/proj", "github:owner/repo")
	require.NoError(t, err)

	out, err := runCLI(t, cli, "config", "print-matching-entries", "--config-path", configPath, "/home/user/proj")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"pattern":"/home/user/proj","flake_reference":"github:owner/repo","pattern_adjacent":null,"impure":null}]`, out)
}

func TestConfigPrintMatchingEntriesEmptyConfigIsEmptyArray(t *testing.T) {
	cli, _, _ := newTestCLI()
	configPath := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, cli, "config", "print-matching-entries", "--config-path", configPath, "/nowhere")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestConfigEditUsesExplicitEditorProgramOverEnv(t *testing.T) {
	t.Setenv("EDITOR", "should-not-be-used")

	cli, editor, _ := newTestCLI()
	configPath := filepath.Join(t.TempDir(), "config.toml")

	_, err := runCLI(t, cli, "config", "edit", "--config-path", configPath, "--editor-program", "vim")
	require.NoError(t, err)
	assert.Equal(t, "vim", editor.program)
	assert.Equal(t, configPath, editor.path)
}

func TestConfigEditFallsBackToEditorEnvVar(t *testing.T) {
	t.Setenv("EDITOR", "nano")

	cli, editor, _ := newTestCLI()
	configPath := filepath.Join(t.TempDir(), "config.toml")

	_, err := runCLI(t, cli, "config", "edit", "--config-path", configPath)
	require.NoError(t, err)
	assert.Equal(t, "nano", editor.program)
}

func TestConfigEditFailsWithoutAnyEditor(t *testing.T) {
	t.Setenv("EDITOR", "")

	cli, _, _ := newTestCLI()
	configPath := filepath.Join(t.TempDir(), "config.toml")

	_, err := runCLI(t, cli, "config", "edit", "--config-path", configPath)
	assert.ErrorIs(t, err, domain.ErrEditorNotFound)
}

func TestShellCheckNixVersionPropagatesProbeError(t *testing.T) {
	cli, _, probe := newTestCLI()
	probe.err = domain.ErrNixVersionTooOld

	_, err := runCLI(t, cli, "shell", "check-nix-version")
	assert.ErrorIs(t, err, domain.ErrNixVersionTooOld)
}

func TestShellHookEmitsBashPromptCommandWiring(t *testing.T) {
	cli, _, _ := newTestCLI()

	out, err := runCLI(t, cli, "shell", "hook", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "PROMPT_COMMAND")
	assert.Contains(t, out, "shell export bash")
}

func TestShellExportNoMatchingEntriesProducesNoOutput(t *testing.T) {
	cli, _, _ := newTestCLI()
	configPath := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, cli, "shell", "export", "bash", "--config-path", configPath, "--current-dir", "/nowhere")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestShellExportWithExplicitFlakeReferencesBypassesDirectoryMatching(t *testing.T) {
	cli, _, _ := newTestCLI()

	out, err := runCLI(t, cli, "shell", "export", "bash", "--flake-references", "github:owner/repo")
	require.NoError(t, err)
	assert.Contains(t, out, "export "+domain.StateVarKey)
}

func TestShellPrintCachePathIsDeterministic(t *testing.T) {
	cli, _, _ := newTestCLI()
	cacheDir := t.TempDir()

	out1, err := runCLI(t, cli, "shell", "print-cache-path", "--cache-dir", cacheDir, "--flake-reference", "github:owner/repo")
	require.NoError(t, err)

	out2, err := runCLI(t, cli, "shell", "print-cache-path", "--cache-dir", cacheDir, "--flake-reference", "github:owner/repo")
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
	assert.NotEmpty(t, out1)
}

func TestShellPrintCachePathRequiresFlakeReference(t *testing.T) {
	cli, _, _ := newTestCLI()

	_, err := runCLI(t, cli, "shell", "print-cache-path", "--cache-dir", t.TempDir())
	assert.Error(t, err)
}
