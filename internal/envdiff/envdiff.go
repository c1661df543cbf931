// Package envdiff implements the environment-diff engine: capturing an
// old-vs-new environment delta, filtering ignored keys, merging
// delimited path-like variables, and encoding/decoding the reversible blob
// stored in domain.StateVarKey.
package envdiff

import (
	"strings"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// ignoredPrefixes are per-shell variable name prefixes that are never
// captured, diffed, or reset.
var ignoredPrefixes = []string{"__fish", "BASH_FUNC_"}

// ignoredKeys is the fixed set of variable names that are never captured,
// diffed, or reset, in addition to ignoredPrefixes.
var ignoredKeys = map[string]bool{
	"DIRENV_CONFIG":   true,
	"DIRENV_BASH":     true,
	"DIRENV_IN_ENVRC": true,
	"COMP_WORDBREAKS": true,
	"PS1":             true,
	"OLDPWD":          true,
	"PWD":             true,
	"SHELL":           true,
	"SHELLOPTS":       true,
	"SHLVL":           true,
	"_":               true,
}

// DelimitedVars is the config record naming which variables are ":"-joined
// lists requiring merge rather than replacement, and the delimiter to use.
// Exposed as a value (rather than a package constant) so tests can vary it.
type DelimitedVars struct {
	Vars map[string]string // var name -> delimiter
}

// DefaultDelimitedVars merges PATH and XDG_DATA_DIRS on ":".
func DefaultDelimitedVars() DelimitedVars {
	return DelimitedVars{Vars: map[string]string{
		"PATH":          ":",
		"XDG_DATA_DIRS": ":",
	}}
}

// Ignored reports whether key is filtered out of every capture/diff/reset
// operation.
func Ignored(key string) bool {
	if ignoredKeys[key] {
		return true
	}
	for _, prefix := range ignoredPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// Filter returns a copy of vars with every ignored key removed.
func Filter(vars *domain.EnvVars) *domain.EnvVars {
	out := domain.NewEnvVars()
	for _, k := range vars.Keys() {
		if Ignored(k) {
			continue
		}
		v, _ := vars.Get(k)
		out.Set(k, v)
	}
	return out
}

// OldToBeUpdated returns the subset of old whose keys are also present in
// new with a different value — the set of variables about to be overwritten.
func OldToBeUpdated(old, new *domain.EnvVars) *domain.EnvVars {
	out := domain.NewEnvVars()
	for _, k := range old.Keys() {
		oldVal, _ := old.Get(k)
		if newVal, ok := new.Get(k); ok && newVal != oldVal {
			out.Set(k, oldVal)
		}
	}
	return out
}

// ResetState builds the EnvVarsState that reverts newKeys to the values
// recorded in oldToBeUpdated (or "absent" if a key has no recorded old
// value), plus an entry unsetting stateKey itself.
func ResetState(oldToBeUpdated *domain.EnvVars, newKeys []string, stateKey string) *domain.EnvVarsState {
	out := domain.NewEnvVarsState()
	for _, k := range newKeys {
		if v, ok := oldToBeUpdated.Get(k); ok {
			out.SetValue(k, v)
		} else {
			out.SetAbsent(k)
		}
	}
	out.SetAbsent(stateKey)
	return out
}

// MergeDelimited merges the delimited variables named in dv into new,
// prepending new's own entries (so flake-added directories take priority)
// and appending old's entries with duplicates removed, first occurrence
// preserved. Only variables present in both old and new are merged.
func MergeDelimited(dv DelimitedVars, old, new *domain.EnvVars) {
	for varName, delim := range dv.Vars {
		oldVal, oldOK := old.Get(varName)
		newVal, newOK := new.Get(varName)
		if !oldOK || !newOK {
			continue
		}
		merged := dedupInOrder(append(splitNonEmpty(newVal, delim), splitNonEmpty(oldVal, delim)...))
		new.Set(varName, strings.Join(merged, delim))
	}
}

// Transition is the outcome of diffing an old environment against a newly
// harvested one: the variables to export into the shell, and the state that
// would undo the export later.
type Transition struct {
	ToExport *domain.EnvVars
	ToReset  *domain.EnvVarsState
}

// Diff computes a Transition from oldEnviron (the shell's environment before
// entering the flake's dev-shell) to newEnviron (the environment harvested
// from inside it), filtering ignored keys and merging delimited variables
// per dv. Only variables that are new or whose value changed are exported.
// stateKey is the variable name the resulting reset state must itself unset
// on reversal.
func Diff(dv DelimitedVars, oldEnviron, newEnviron *domain.EnvVars, stateKey string) Transition {
	oldF := Filter(oldEnviron)
	newF := Filter(newEnviron)
	MergeDelimited(dv, oldF, newF)

	changed := domain.NewEnvVars()
	for _, k := range newF.Keys() {
		v, _ := newF.Get(k)
		if oldV, ok := oldF.Get(k); !ok || oldV != v {
			changed.Set(k, v)
		}
	}

	toBeUpdated := OldToBeUpdated(oldF, changed)
	toReset := ResetState(toBeUpdated, changed.Keys(), stateKey)

	return Transition{ToExport: changed, ToReset: toReset}
}

func splitNonEmpty(s, delim string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, delim)
}

func dedupInOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
