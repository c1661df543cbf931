// Package nixrunner implements ports.NixRunner by shelling out to the
// installed `nix` binary, adapted from bob's internal/adapters/nix.Adapter
// command-execution pattern.
package nixrunner

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/alessio/shellescape"
	"go.trai.ch/zerr"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// Runner shells out to `nix`.
type Runner struct{}

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

// Run executes `nix <args...>`, streaming its stderr to the terminal live
// and returning its captured stdout. On a non-zero exit it wraps
// domain.ErrNixCommandFailed with the full quoted command line.
func (r *Runner) Run(ctx context.Context, args ...string) ([]byte, error) {
	//nolint:gosec // args are built internally from resolved flake references, never raw user shell input
	cmd := exec.CommandContext(ctx, "nix", args...)
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNixCommandFailed.Error()), "command", shellescape.QuoteCommand(append([]string{"nix"}, args...)))
	}
	return stdout.Bytes(), nil
}
