package promptstate

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/envoluntary/envoluntary/internal/core/domain"
	"github.com/envoluntary/envoluntary/internal/core/ports"
	"github.com/envoluntary/envoluntary/internal/envdiff"
)

// Plan is the result of running the chain to its terminal stage: the
// reset statements to emit first (if any), followed by the new export
// statements (if any), per the ordering rule that resets precede new
// exports.
type Plan struct {
	Reset  *domain.EnvVarsState
	Export *domain.EnvVarsState
}

// Emit writes Reset then Export through emitter, in that order. Either may
// be nil.
func (p Plan) Emit(w io.Writer, emitter ports.ShellEmitter) error {
	if p.Reset != nil {
		if err := emitter.EmitState(w, p.Reset); err != nil {
			return err
		}
	}
	if p.Export != nil {
		if err := emitter.EmitState(w, p.Export); err != nil {
			return err
		}
	}
	return nil
}

// Dependencies bundles the collaborators Decide needs to acquire profiles,
// harvest environments, and decode/encode the state blob.
type Dependencies struct {
	CacheDir       string
	CacheFactory   ports.ProfileCacheFactory
	Harvester      ports.BashHarvester
	Telemetry      ports.Telemetry
	ImpureOverride *bool
	ForceUpdate    bool
	Decode         func(blob string) (*domain.EnvState, error)
	Encode         func(state *domain.EnvState) (string, error)
}

// Decide runs the business logic of the terminal stage against environ (the
// current process environment) and produces the Plan to emit.
//
//   - NoRcs, absent:  Done (zero Plan).
//   - NoRcs, present: FullReset — emit the decoded reset state, nothing else.
//   - Rcs, absent:    SetNew — acquire and harvest every matched config, emit.
//   - Rcs, present, same flake set: Done (zero Plan).
//   - Rcs, present, different flake set: reset then SetNew.
func (s GetEnvStateVarState) Decide(ctx context.Context, deps Dependencies, environ *domain.EnvVars) (Plan, error) {
	if !s.HasRcs() {
		if !s.present {
			return Plan{}, nil
		}
		state, err := deps.Decode(s.blob)
		if err != nil {
			return Plan{}, err
		}
		return Plan{Reset: state.EnvVarsReset}, nil
	}

	refs := flakeReferences(s.configs)

	var reset *domain.EnvVarsState
	if s.present {
		state, err := deps.Decode(s.blob)
		if err != nil {
			return Plan{}, err
		}
		if state.FlakeReferencesEqual(refs) {
			return Plan{}, nil
		}
		reset = state.EnvVarsReset
	}

	export, err := setNew(ctx, deps, s.configs, refs, environ)
	if err != nil {
		return Plan{}, err
	}
	return Plan{Reset: reset, Export: export}, nil
}

// seedEnvVar is set in every harvest's seed environment so that upstream
// devshell flakes print their MOTD, matching an interactive direnv load.
const seedEnvVar = "DIRENV_IN_ENVRC"

func setNew(ctx context.Context, deps Dependencies, configs []domain.ConfigEntry, refs []string, environ *domain.EnvVars) (*domain.EnvVarsState, error) {
	caches := make([]ports.ProfileCache, len(configs))
	for i, entry := range configs {
		mode := domain.EvaluationModeFor(deps.ImpureOverride, entry.Impure)
		cache, err := deps.CacheFactory.New(deps.CacheDir, entry.FlakeReference, mode)
		if err != nil {
			return nil, err
		}
		caches[i] = cache
	}

	// Freshness checks only stat files, so they run concurrently; the
	// rebuilds they call for then run one at a time, in config order.
	stale := make([]bool, len(caches))
	var group errgroup.Group
	for i, cache := range caches {
		i, cache := i, cache
		group.Go(func() (err error) {
			stale[i], err = cache.NeedsUpdate()
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	for i, cache := range caches {
		if !stale[i] && !deps.ForceUpdate {
			if deps.Telemetry != nil {
				_, vertex := deps.Telemetry.Record(ctx, "update "+refs[i])
				vertex.Cached()
			}
			continue
		}
		if err := cache.Update(ctx); err != nil {
			return nil, err
		}
	}

	seed := environ.Clone()
	seed.Set(seedEnvVar, "1")

	// Each config is harvested against the same seed (the pre-export
	// environment, not a previous config's harvested result) and diffed
	// against environ independently, then extended in order so a later
	// config's value for a given key replaces an earlier one rather than
	// being prepended onto it — matching original_source's per-config
	// try_fold over the real process environment.
	export := domain.NewEnvVarsState()
	reset := domain.NewEnvVarsState()
	for _, cache := range caches {
		harvested, err := deps.Harvester.HarvestFile(ctx, cache.ProfileRC(), seed)
		if err != nil {
			return nil, err
		}
		transition := envdiff.Diff(envdiff.DefaultDelimitedVars(), environ, harvested, domain.StateVarKey)
		export.Extend(domain.Promote(transition.ToExport))
		reset.Extend(transition.ToReset)
	}

	blob, err := deps.Encode(&domain.EnvState{FlakeReferences: refs, EnvVarsReset: reset})
	if err != nil {
		return nil, err
	}

	export.SetValue(domain.StateVarKey, blob)
	return export, nil
}

func flakeReferences(configs []domain.ConfigEntry) []string {
	refs := make([]string, len(configs))
	for i, c := range configs {
		refs[i] = c.FlakeReference
	}
	return refs
}
