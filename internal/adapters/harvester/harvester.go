// Package harvester implements ports.BashHarvester by sourcing or evaluating
// a script under bash and capturing the resulting environment, adapted from
// bob's internal/adapters/shell.Executor command-construction pattern.
package harvester

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/alessio/shellescape"
	"go.trai.ch/zerr"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// Harvester implements ports.BashHarvester using bash and a temp file.
type Harvester struct{}

// New creates a Harvester.
func New() *Harvester {
	return &Harvester{}
}

// HarvestFile sources path under bash and returns the environment that
// results, seeded with seed.
func (h *Harvester) HarvestFile(ctx context.Context, path string, seed *domain.EnvVars) (*domain.EnvVars, error) {
	return h.harvest(ctx, "source "+shellescape.Quote(path), seed)
}

// HarvestScript evaluates script under bash and returns the environment
// that results, seeded with seed.
func (h *Harvester) HarvestScript(ctx context.Context, script string, seed *domain.EnvVars) (*domain.EnvVars, error) {
	return h.harvest(ctx, "eval "+shellescape.Quote(script), seed)
}

func (h *Harvester) harvest(ctx context.Context, sourceExpr string, seed *domain.EnvVars) (*domain.EnvVars, error) {
	tmp, err := os.CreateTemp("", "envoluntary-harvest-*")
	if err != nil {
		return nil, zerr.Wrap(err, "create harvest temp file")
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath)

	command := sourceExpr + " && env -0 > " + shellescape.Quote(tmpPath)

	//nolint:gosec // command is built from shell-escaped, internally constructed tokens
	cmd := exec.CommandContext(ctx, "bash", "-c", command)
	cmd.Env = envSlice(seed)
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHarvestFailed.Error()), "command", command)
	}

	raw, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, zerr.Wrap(err, "read harvested env file")
	}

	return parseNULSeparated(raw), nil
}

func envSlice(seed *domain.EnvVars) []string {
	if seed == nil {
		return nil
	}
	out := make([]string, 0, seed.Len())
	for _, k := range seed.Keys() {
		v, _ := seed.Get(k)
		out = append(out, k+"="+v)
	}
	return out
}

func parseNULSeparated(raw []byte) *domain.EnvVars {
	result := domain.NewEnvVars()
	for _, record := range bytes.Split(raw, []byte{0}) {
		if len(record) == 0 {
			continue
		}
		key, value, found := bytesCutByte(record, '=')
		if !found {
			continue
		}
		result.Set(string(key), string(value))
	}
	return result
}

func bytesCutByte(s []byte, sep byte) (before, after []byte, found bool) {
	if i := bytes.IndexByte(s, sep); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, nil, false
}
