package ports

import (
	"context"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// NixRunner abstracts invocation of the external `nix` binary: a vector of
// argument strings in, captured stdout and an error out. Tests substitute a
// fake that reads pre-seeded fixtures instead of shelling out.
//
//go:generate go run go.uber.org/mock/mockgen -source=nix.go -destination=mocks/mock_nix.go -package=mocks
type NixRunner interface {
	// Run executes `nix <args...>` and returns captured stdout. A non-zero
	// exit produces an error whose message embeds the quoted command line.
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// VersionProbe checks that the installed nix binary satisfies the minimum
// supported version.
//
//go:generate go run go.uber.org/mock/mockgen -source=nix.go -destination=mocks/mock_nix.go -package=mocks
type VersionProbe interface {
	// CheckVersion runs `nix --version` and returns an error if nix is
	// missing, its version is unparsable, or it is older than the minimum
	// supported version.
	CheckVersion(ctx context.Context) error
}

// ProfileCache is the per-flake content-addressed cache of materialised
// dev-shells.
//
//go:generate go run go.uber.org/mock/mockgen -source=nix.go -destination=mocks/mock_nix.go -package=mocks
type ProfileCache interface {
	// NeedsUpdate reports whether the cache entry is missing or stale.
	NeedsUpdate() (bool, error)
	// Update rebuilds the cache entry: GC roots, .rc file, flake inputs.
	Update(ctx context.Context) error
	// ProfileRC returns the path to the cached `.rc` script.
	ProfileRC() string
}

// ProfileCacheFactory constructs a ProfileCache for one flake reference.
type ProfileCacheFactory interface {
	New(cacheDir, flakeRef string, mode domain.EvaluationMode) (ProfileCache, error)
}
