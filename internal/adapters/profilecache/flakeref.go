package profilecache

import (
	"os"
	"path/filepath"
	"strings"
)

// parsedFlakeRef is a flake reference split into its addressable components:
// whether it names a local path (and so should be content-addressed by its
// watched files) or a remote reference (content-addressed by the reference
// string itself), the filesystem path for local references, and any
// trailing "#fragment".
type parsedFlakeRef struct {
	IsLocal  bool
	Path     string // resolved filesystem path, only set when IsLocal
	Fragment string // including the leading "#", empty if none
	Raw      string // the reference exactly as it will be passed to `nix`, fragment included
}

// parseFlakeRef classifies ref per the "path" shape recognised by Nix:
// strings beginning with "path:", "~", "/", "./", or "../". The leading
// "path:" is stripped before further processing. Local references undergo
// shell-style expansion ("~" and "$VAR"); a "#fragment" suffix is preserved
// on the raw reference in either case.
func parseFlakeRef(ref string) parsedFlakeRef {
	body, fragment, _ := strings.Cut(ref, "#")
	if fragment != "" {
		fragment = "#" + fragment
	}

	trimmed := strings.TrimPrefix(body, "path:")
	isLocal := trimmed != body ||
		strings.HasPrefix(body, "~") ||
		strings.HasPrefix(body, "/") ||
		strings.HasPrefix(body, "./") ||
		strings.HasPrefix(body, "../")

	if !isLocal {
		return parsedFlakeRef{IsLocal: false, Raw: ref}
	}

	expanded := expandShell(trimmed)
	return parsedFlakeRef{
		IsLocal:  true,
		Path:     expanded,
		Fragment: fragment,
		Raw:      expanded + fragment,
	}
}

// expandShell performs "~" home-directory and "$VAR"/"${VAR}" environment
// expansion, mirroring what a shell would do before handing the argument to
// `nix`.
func expandShell(s string) string {
	if s == "~" || strings.HasPrefix(s, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			s = filepath.Join(home, strings.TrimPrefix(s, "~"))
		}
	}
	return os.Expand(s, func(name string) string {
		return os.Getenv(name)
	})
}
