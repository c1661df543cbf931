package promptstate

import (
	"context"

	"github.com/envoluntary/envoluntary/internal/core/domain"
	"github.com/envoluntary/envoluntary/internal/core/ports"
	"github.com/envoluntary/envoluntary/internal/envdiff"
)

// Run drives the full chain, from a directory override (may be empty)
// through to a Plan, given the current process environment. It is the
// single entry point cmd/envoluntary's `shell export` handler needs for
// directory-matched flakes.
func Run(ctx context.Context, resolver ports.DirectoryResolver, deps Dependencies, dirOverride string, environ *domain.EnvVars) (Plan, error) {
	dirState, err := New(dirOverride).ResolveCurrentDir()
	if err != nil {
		return Plan{}, err
	}

	matchState, err := dirState.MatchRcs(resolver)
	if err != nil {
		return Plan{}, err
	}

	return decide(ctx, matchState, deps, environ)
}

// RunWithConfigs drives the chain starting from an explicit config list,
// bypassing directory resolution — used when the caller supplies flake
// references directly (`shell export --flake-references`).
func RunWithConfigs(ctx context.Context, configs []domain.ConfigEntry, deps Dependencies, environ *domain.EnvVars) (Plan, error) {
	return decide(ctx, NewMatchedState(configs), deps, environ)
}

func decide(ctx context.Context, matchState MatchRcsState, deps Dependencies, environ *domain.EnvVars) (Plan, error) {
	if deps.Decode == nil {
		deps.Decode = envdiff.Decode
	}
	if deps.Encode == nil {
		deps.Encode = envdiff.Encode
	}
	return matchState.GetEnvStateVar(environ).Decide(ctx, deps, environ)
}
