package envdiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envoluntary/envoluntary/internal/core/domain"
	"github.com/envoluntary/envoluntary/internal/envdiff"
)

func vars(pairs ...string) *domain.EnvVars {
	v := domain.NewEnvVars()
	for i := 0; i < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}

func TestIgnored(t *testing.T) {
	assert.True(t, envdiff.Ignored("PWD"))
	assert.True(t, envdiff.Ignored("SHLVL"))
	assert.True(t, envdiff.Ignored("__fish_data_dir"))
	assert.True(t, envdiff.Ignored("BASH_FUNC_foo%%"))
	assert.False(t, envdiff.Ignored("PATH"))
	assert.False(t, envdiff.Ignored("GOPATH"))
}

func TestFilter(t *testing.T) {
	in := vars("PATH", "/usr/bin", "PWD", "/home/me", "GOPATH", "/go")
	out := envdiff.Filter(in)

	assert.Equal(t, 2, out.Len())
	_, ok := out.Get("PWD")
	assert.False(t, ok)
	v, ok := out.Get("PATH")
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin", v)
}

func TestOldToBeUpdated(t *testing.T) {
	old := vars("FOO", "1", "BAR", "2", "BAZ", "3")
	new := vars("FOO", "99", "BAR", "2", "QUX", "4")

	out := envdiff.OldToBeUpdated(old, new)

	assert.Equal(t, 1, out.Len())
	v, ok := out.Get("FOO")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestResetState(t *testing.T) {
	oldToBeUpdated := vars("FOO", "1")
	newKeys := []string{"FOO", "NEWVAR"}

	state := envdiff.ResetState(oldToBeUpdated, newKeys, domain.StateVarKey)

	foo, ok := state.Get("FOO")
	require.True(t, ok)
	assert.Equal(t, domain.VarValue{Value: "1"}, foo)

	newvar, ok := state.Get("NEWVAR")
	require.True(t, ok)
	assert.True(t, newvar.Absent)

	stateVar, ok := state.Get(domain.StateVarKey)
	require.True(t, ok)
	assert.True(t, stateVar.Absent)
}

func TestMergeDelimited(t *testing.T) {
	old := vars("PATH", "/usr/bin:/bin")
	new := vars("PATH", "/nix/store/abc/bin:/usr/bin")

	dv := envdiff.DefaultDelimitedVars()
	envdiff.MergeDelimited(dv, old, new)

	merged, ok := new.Get("PATH")
	require.True(t, ok)
	assert.Equal(t, "/nix/store/abc/bin:/usr/bin:/bin", merged)
}

func TestMergeDelimitedSkipsWhenAbsentFromEither(t *testing.T) {
	old := vars("OTHER", "x")
	new := vars("PATH", "/nix/store/abc/bin")

	dv := envdiff.DefaultDelimitedVars()
	envdiff.MergeDelimited(dv, old, new)

	v, ok := new.Get("PATH")
	require.True(t, ok)
	assert.Equal(t, "/nix/store/abc/bin", v)
}

func TestDiff(t *testing.T) {
	old := vars("PATH", "/usr/bin", "PWD", "/home/me", "EDITOR_ONLY_OLD", "kept")
	new := vars("PATH", "/nix/store/x/bin:/usr/bin", "PWD", "/home/me/project", "GOPATH", "/nix/go")

	transition := envdiff.Diff(envdiff.DefaultDelimitedVars(), old, new, domain.StateVarKey)

	path, ok := transition.ToExport.Get("PATH")
	require.True(t, ok)
	assert.Equal(t, "/nix/store/x/bin:/usr/bin", path)

	gopath, ok := transition.ToExport.Get("GOPATH")
	require.True(t, ok)
	assert.Equal(t, "/nix/go", gopath)

	_, ok = transition.ToExport.Get("PWD")
	assert.False(t, ok, "PWD must be filtered before export")

	resetPath, ok := transition.ToReset.Get("PATH")
	require.True(t, ok)
	assert.Equal(t, domain.VarValue{Value: "/usr/bin"}, resetPath)

	resetGopath, ok := transition.ToReset.Get("GOPATH")
	require.True(t, ok)
	assert.True(t, resetGopath.Absent)

	resetStateVar, ok := transition.ToReset.Get(domain.StateVarKey)
	require.True(t, ok)
	assert.True(t, resetStateVar.Absent)
}
