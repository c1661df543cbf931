// Package resolver implements ports.DirectoryResolver: a TOML-backed set of
// directory-pattern-to-flake mappings with tilde-aware regex matching and
// an "adjacent file" ancestor-walk predicate, adapted from bob's
// internal/adapters/config.Loader file-handling shape.
package resolver

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// Resolver implements ports.DirectoryResolver backed by a TOML file at
// configPath.
type Resolver struct {
	configPath string
}

// New creates a Resolver rooted at configPath. The file need not exist yet:
// a missing config behaves as an empty one.
func New(configPath string) *Resolver {
	return &Resolver{configPath: configPath}
}

// ConfigPath returns the path of the backing config file.
func (r *Resolver) ConfigPath() string {
	return r.configPath
}

// Entries returns every configured entry, in file order, with patterns
// compiled to *regexp.Regexp.
func (r *Resolver) Entries() ([]domain.ConfigEntry, error) {
	raw, err := r.load()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ConfigEntry, 0, len(raw.Entries))
	for _, e := range raw.Entries {
		entry, err := compileEntry(e)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Match returns the entries whose pattern (and, if set, pattern_adjacent)
// matches dir, in file order.
func (r *Resolver) Match(dir string) ([]domain.ConfigEntry, error) {
	entries, err := r.Entries()
	if err != nil {
		return nil, err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "resolve absolute directory")
	}
	rawForm, tildeForm := pathForms(absDir)

	matched := make([]domain.ConfigEntry, 0, len(entries))
	for _, entry := range entries {
		if !matchesEither(entry.Pattern, rawForm, tildeForm) {
			continue
		}
		if entry.PatternAdjacent != nil && !hasAdjacentMatch(absDir, entry.PatternAdjacent) {
			continue
		}
		matched = append(matched, entry)
	}
	return matched, nil
}

// AddEntry validates pattern and patternAdjacent, appends the new entry,
// and rewrites the config file as pretty-printed TOML.
func (r *Resolver) AddEntry(pattern, flakeReference, patternAdjacent string, impure *bool) error {
	if _, err := regexp.Compile(pattern); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", pattern)
	}
	if patternAdjacent != "" {
		if _, err := regexp.Compile(patternAdjacent); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", patternAdjacent)
		}
	}

	raw, err := r.load()
	if err != nil {
		return err
	}
	raw.Entries = append(raw.Entries, tomlEntry{
		Pattern:         pattern,
		FlakeReference:  flakeReference,
		PatternAdjacent: patternAdjacent,
		Impure:          impure,
	})
	return r.save(raw)
}

func (r *Resolver) load() (tomlConfig, error) {
	data, err := os.ReadFile(r.configPath)
	if os.IsNotExist(err) {
		return tomlConfig{}, nil
	}
	if err != nil {
		return tomlConfig{}, zerr.With(zerr.Wrap(err, "read config file"), "path", r.configPath)
	}

	var cfg tomlConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return tomlConfig{}, zerr.With(zerr.Wrap(err, "parse config toml"), "path", r.configPath)
	}
	return cfg, nil
}

func (r *Resolver) save(cfg tomlConfig) error {
	if err := os.MkdirAll(filepath.Dir(r.configPath), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "create config directory"), "path", r.configPath)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return zerr.Wrap(err, "marshal config toml")
	}
	if err := os.WriteFile(r.configPath, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "write config file"), "path", r.configPath)
	}
	return nil
}

func compileEntry(e tomlEntry) (domain.ConfigEntry, error) {
	pattern, err := regexp.Compile(e.Pattern)
	if err != nil {
		return domain.ConfigEntry{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", e.Pattern)
	}

	var adjacent *regexp.Regexp
	if e.PatternAdjacent != "" {
		adjacent, err = regexp.Compile(e.PatternAdjacent)
		if err != nil {
			return domain.ConfigEntry{}, zerr.With(
				zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", e.PatternAdjacent,
			)
		}
	}

	return domain.ConfigEntry{
		Pattern:         pattern,
		PatternAdjacent: adjacent,
		FlakeReference:  e.FlakeReference,
		Impure:          e.Impure,
	}, nil
}

// pathForms returns the raw absolute path and, if it lies under the user's
// home directory, the tilde-substituted equivalent.
func pathForms(absPath string) (raw string, tilde string) {
	raw = absPath
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return raw, ""
	}
	if absPath == home {
		return raw, "~"
	}
	if rel, ok := cutPrefix(absPath, home+string(filepath.Separator)); ok {
		return raw, "~" + string(filepath.Separator) + rel
	}
	return raw, ""
}

func cutPrefix(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):], true
	}
	return "", false
}

func matchesEither(pattern *regexp.Regexp, raw, tilde string) bool {
	if pattern.MatchString(raw) {
		return true
	}
	return tilde != "" && pattern.MatchString(tilde)
}

// hasAdjacentMatch walks dir and every ancestor up to the filesystem root,
// including dir itself as its own first ancestor, looking for an immediate
// child whose raw or tilde-substituted path matches adjacent.
func hasAdjacentMatch(dir string, adjacent *regexp.Regexp) bool {
	current := dir
	for {
		entries, err := os.ReadDir(current)
		if err == nil {
			for _, entry := range entries {
				childPath := filepath.Join(current, entry.Name())
				childRaw, childTilde := pathForms(childPath)
				if matchesEither(adjacent, childRaw, childTilde) {
					return true
				}
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return false
		}
		current = parent
	}
}
