package harvester_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envoluntary/envoluntary/internal/adapters/harvester"
	"github.com/envoluntary/envoluntary/internal/core/domain"
)

func TestHarvestFile(t *testing.T) {
	if _, err := os.Stat("/bin/bash"); err != nil {
		t.Skip("bash not available")
	}

	script := filepath.Join(t.TempDir(), "env.sh")
	require.NoError(t, os.WriteFile(script, []byte("export HARVESTED_VAR=from_file\n"), 0o644))

	h := harvester.New()
	env, err := h.HarvestFile(context.Background(), script, nil)
	require.NoError(t, err)

	v, ok := env.Get("HARVESTED_VAR")
	require.True(t, ok)
	assert.Equal(t, "from_file", v)
}

func TestHarvestScriptWithSeed(t *testing.T) {
	if _, err := os.Stat("/bin/bash"); err != nil {
		t.Skip("bash not available")
	}

	seed := domain.NewEnvVars()
	seed.Set("DIRENV_IN_ENVRC", "1")

	h := harvester.New()
	env, err := h.HarvestScript(context.Background(), "export SAW_SEED=$DIRENV_IN_ENVRC", seed)
	require.NoError(t, err)

	v, ok := env.Get("SAW_SEED")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestHarvestScriptFailurePropagates(t *testing.T) {
	if _, err := os.Stat("/bin/bash"); err != nil {
		t.Skip("bash not available")
	}

	h := harvester.New()
	_, err := h.HarvestScript(context.Background(), "exit 3", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHarvestFailed)
}
