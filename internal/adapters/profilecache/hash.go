package profilecache

import (
	"crypto/sha1" //nolint:gosec // content addressing, not a security boundary
	"encoding/hex"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// watchedFileNames are the local-flake files whose contents (or absence)
// determine a cache entry's content hash.
var watchedFileNames = []string{"flake.nix", "flake.lock", "devshell.toml"}

// watchedFilePaths returns the existing watched files under dir, in the
// fixed order of watchedFileNames.
func watchedFilePaths(dir string) []string {
	paths := make([]string, 0, len(watchedFileNames))
	for _, name := range watchedFileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}

// contentHash computes the SHA-1 hex digest of ref's cache-entry identity:
// the concatenation of its watched files' contents for a local flake, or
// the reference string itself for a remote one.
func contentHash(ref parsedFlakeRef) (string, error) {
	h := sha1.New() //nolint:gosec // content addressing, not a security boundary

	if !ref.IsLocal {
		h.Write([]byte(ref.Raw))
		return hex.EncodeToString(h.Sum(nil)), nil
	}

	paths := watchedFilePaths(ref.Path)
	if len(paths) == 0 {
		return "", domain.ErrNoFilesToHash
	}
	for _, p := range paths {
		//nolint:gosec // p is one of a fixed set of filenames joined against a resolved flake directory
		data, err := os.ReadFile(p)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "read watched file"), "path", p)
		}
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
