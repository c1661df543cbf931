// Package promptstate implements the prompt-hook typestate chain that backs
// the `shell export` subcommand: resolve the current directory, match it
// against configured flakes, read the carried env-state variable, and
// decide between doing nothing, a full reset, loading a new set of flakes,
// or resetting before loading. Each stage is its own type so that a caller
// cannot skip ahead — e.g. there is no way to reach a "load new flakes"
// decision without having first matched a directory.
package promptstate

import (
	"os"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// ShellPromptState is the chain's entry point: either an explicit directory
// override (as passed via a CLI flag) or nothing, meaning "use the process
// working directory".
type ShellPromptState struct {
	dirOverride string
}

// New starts the chain. dirOverride may be empty.
func New(dirOverride string) ShellPromptState {
	return ShellPromptState{dirOverride: dirOverride}
}

// ResolveCurrentDir reads the process working directory, unless an override
// was supplied.
func (s ShellPromptState) ResolveCurrentDir() (CurrentDirState, error) {
	if s.dirOverride != "" {
		return CurrentDirState{dir: s.dirOverride}, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return CurrentDirState{}, domain.ErrCurrentDirUnavailable
	}
	return CurrentDirState{dir: wd}, nil
}

// CurrentDirState carries the resolved working directory.
type CurrentDirState struct {
	dir string
}

// resolver is the minimal surface promptstate needs from
// ports.DirectoryResolver, named locally to keep this file free of an
// adapter-layer import for its own sake.
type resolver interface {
	Match(dir string) ([]domain.ConfigEntry, error)
}

// MatchRcs invokes the resolver and branches into NoRcs or Rcs.
func (s CurrentDirState) MatchRcs(r resolver) (MatchRcsState, error) {
	configs, err := r.Match(s.dir)
	if err != nil {
		return MatchRcsState{}, err
	}
	return MatchRcsState{dir: s.dir, configs: configs}, nil
}

// MatchRcsState carries the directory and its matched configs, which may be
// empty (the NoRcs case).
type MatchRcsState struct {
	dir     string
	configs []domain.ConfigEntry
}

// NewMatchedState builds a MatchRcsState directly from configs, bypassing
// directory resolution — used when the caller supplies flake references
// explicitly instead of matching the current directory against the
// configured entries.
func NewMatchedState(configs []domain.ConfigEntry) MatchRcsState {
	return MatchRcsState{configs: configs}
}

// HasRcs reports whether any config matched (the Rcs case, as opposed to
// NoRcs).
func (s MatchRcsState) HasRcs() bool {
	return len(s.configs) > 0
}

// GetEnvStateVar reads the carried env-state variable out of environ,
// producing the final branch point.
func (s MatchRcsState) GetEnvStateVar(environ *domain.EnvVars) GetEnvStateVarState {
	blob, present := environ.Get(domain.StateVarKey)
	return GetEnvStateVarState{
		dir:     s.dir,
		configs: s.configs,
		blob:    blob,
		present: present,
	}
}

// GetEnvStateVarState is the chain's terminal stage: it holds everything
// needed to decide and build the emission plan (see plan.go).
type GetEnvStateVarState struct {
	dir     string
	configs []domain.ConfigEntry
	blob    string
	present bool
}
