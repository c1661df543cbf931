// Package profilecache implements the content-addressed flake profile cache:
// GC-root management and mtime-based freshness detection around
// `nix print-dev-env` / `nix build` / `nix flake archive`, adapted from
// bob's internal/adapters/nix.{Adapter,Manager} command patterns.
package profilecache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/envoluntary/envoluntary/internal/core/domain"
	"github.com/envoluntary/envoluntary/internal/core/ports"
)

const (
	dirPerm                   = 0o750
	extraExperimentalFeatures = "nix-command flakes"
	storePrefixLen            = len("/nix/store/")
)

// Cache is one content-addressed cache entry for a single flake reference.
type Cache struct {
	runner    ports.NixRunner
	telemetry ports.Telemetry
	entryDir  string
	flakeRef  parsedFlakeRef
	mode      domain.EvaluationMode
	hash      string
}

// Factory implements ports.ProfileCacheFactory.
type Factory struct {
	runner    ports.NixRunner
	telemetry ports.Telemetry
}

// NewFactory creates a Factory backed by runner. telemetry may be nil, in
// which case Update records no progress vertex.
func NewFactory(runner ports.NixRunner, telemetry ports.Telemetry) *Factory {
	return &Factory{runner: runner, telemetry: telemetry}
}

// New resolves flakeRef's content hash and returns the Cache rooted at
// cacheDir/<hash>.
func (f *Factory) New(cacheDir, flakeRef string, mode domain.EvaluationMode) (ports.ProfileCache, error) {
	ref := parseFlakeRef(flakeRef)
	hash, err := contentHash(ref)
	if err != nil {
		return nil, err
	}
	return &Cache{
		runner:    f.runner,
		telemetry: f.telemetry,
		entryDir:  filepath.Join(cacheDir, hash),
		flakeRef:  ref,
		mode:      mode,
		hash:      hash,
	}, nil
}

// CachePath computes the cache-entry directory for flakeRef under cacheDir
// without touching the nix store or the filesystem beyond reading flakeRef's
// watched files for hashing — used by `shell print-cache-path`, which must
// not trigger a freshness check or an update.
func CachePath(cacheDir, flakeRef string) (string, error) {
	ref := parseFlakeRef(flakeRef)
	hash, err := contentHash(ref)
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, hash), nil
}

func (c *Cache) profileLink() string {
	return filepath.Join(c.entryDir, "flake-profile-"+c.hash)
}

// ProfileRC returns the path of the cached `.rc` script.
func (c *Cache) ProfileRC() string {
	return c.profileLink() + ".rc"
}

func (c *Cache) flakeInputsDir() string {
	return filepath.Join(c.entryDir, "flake-inputs")
}

// NeedsUpdate reports whether the cache entry is missing, or any watched
// input file is newer than the cached `.rc` script.
func (c *Cache) NeedsUpdate() (bool, error) {
	rcInfo, err := os.Stat(c.ProfileRC())
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, zerr.Wrap(err, "stat profile rc")
	}

	if _, err := os.Lstat(c.profileLink()); os.IsNotExist(err) {
		return true, nil
	} else if err != nil {
		return false, zerr.Wrap(err, "stat profile link")
	}

	if !c.flakeRef.IsLocal {
		return false, nil
	}

	for _, p := range watchedFilePaths(c.flakeRef.Path) {
		info, err := os.Stat(p)
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, "stat watched file"), "path", p)
		}
		if info.ModTime().After(rcInfo.ModTime()) {
			return true, nil
		}
	}
	return false, nil
}

// Update rebuilds the cache entry: it tears down and recreates the entry
// directory, invokes `nix print-dev-env` into a temporary profile, pins that
// profile as a GC root, and, for local flakes, pins every flake input store
// path as its own GC root under flake-inputs/.
func (c *Cache) Update(ctx context.Context) (err error) {
	var vertex ports.Vertex
	if c.telemetry != nil {
		ctx, vertex = c.telemetry.Record(ctx, "update "+c.flakeRef.Raw)
		defer func() { vertex.Complete(err) }()
	}

	return c.update(ctx, vertex)
}

func (c *Cache) update(ctx context.Context, vertex ports.Vertex) error {
	if err := os.RemoveAll(c.entryDir); err != nil {
		return zerr.With(zerr.Wrap(err, "remove cache entry directory"), "dir", c.entryDir)
	}
	if err := os.MkdirAll(c.flakeInputsDir(), dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "create flake-inputs directory"), "dir", c.flakeInputsDir())
	}

	tmpProfile := filepath.Join(c.entryDir, fmt.Sprintf("flake-tmp-profile.%d", os.Getpid()))

	printArgs := c.baseArgs("print-dev-env")
	printArgs = append(printArgs, c.mode.Args()...)
	printArgs = append(printArgs, "--no-write-lock-file", "--profile", tmpProfile, c.flakeRef.Raw)

	if vertex != nil {
		vertex.Log("print-dev-env")
	}
	rc, err := c.runner.Run(ctx, printArgs...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.ProfileRC(), rc, 0o644); err != nil { //nolint:gosec // .rc script is sourced, not executed, and must be world-readable like a normal dotfile
		return zerr.With(zerr.Wrap(err, "write profile rc"), "path", c.ProfileRC())
	}

	buildArgs := c.baseArgs("build")
	buildArgs = append(buildArgs, c.mode.Args()...)
	buildArgs = append(buildArgs, "--out-link", c.profileLink(), tmpProfile)
	if vertex != nil {
		vertex.Log("build")
	}
	if _, err := c.runner.Run(ctx, buildArgs...); err != nil {
		return err
	}
	_ = os.Remove(tmpProfile)

	if c.flakeRef.IsLocal {
		if err := c.pinFlakeInputs(ctx, vertex); err != nil {
			return err
		}
	}

	return nil
}

func (c *Cache) baseArgs(subcommand ...string) []string {
	args := []string{"--extra-experimental-features", extraExperimentalFeatures}
	return append(args, subcommand...)
}

// archiveNode mirrors the shape of `nix flake archive --json`'s output:
// a store path and a map of named inputs, each with the same shape.
type archiveNode struct {
	Path   string                 `json:"path"`
	Inputs map[string]archiveNode `json:"inputs"`
}

func (c *Cache) pinFlakeInputs(ctx context.Context, vertex ports.Vertex) error {
	args := c.baseArgs("flake", "archive")
	args = append(args, c.mode.Args()...)
	args = append(args, "--json", "--no-write-lock-file", c.flakeRef.Raw)

	if vertex != nil {
		vertex.Log("flake archive")
	}
	out, err := c.runner.Run(ctx, args...)
	if err != nil {
		return err
	}

	var root archiveNode
	if err := json.Unmarshal(out, &root); err != nil {
		return zerr.Wrap(err, "parse flake archive output")
	}

	paths := make([]string, 0)
	collectArchivePaths(root, &paths)

	for _, storePath := range paths {
		base := storePath
		if len(storePath) > storePrefixLen {
			base = storePath[storePrefixLen:]
		}
		link := filepath.Join(c.flakeInputsDir(), base)
		_ = os.Remove(link)
		if err := os.Symlink(storePath, link); err != nil {
			return zerr.With(zerr.Wrap(err, "create flake input gc root"), "path", storePath)
		}
	}
	return nil
}

func collectArchivePaths(node archiveNode, out *[]string) {
	if node.Path != "" {
		*out = append(*out, node.Path)
	}
	for _, child := range node.Inputs {
		collectArchivePaths(child, out)
	}
}
