// Package wiring constructs the adapters each CLI subcommand needs by
// direct constructor injection, the way cmd/bob/main.go wires bob's
// executor/hasher/store/scheduler by hand rather than through a
// registration framework: this CLI's two command families (config, shell)
// have small, non-overlapping adapter sets, so there is no object graph
// complex enough to warrant one.
package wiring

import (
	"fmt"

	"github.com/envoluntary/envoluntary/internal/adapters/configpath"
	"github.com/envoluntary/envoluntary/internal/adapters/editor"
	"github.com/envoluntary/envoluntary/internal/adapters/emit"
	"github.com/envoluntary/envoluntary/internal/adapters/harvester"
	"github.com/envoluntary/envoluntary/internal/adapters/logger"
	"github.com/envoluntary/envoluntary/internal/adapters/nixrunner"
	"github.com/envoluntary/envoluntary/internal/adapters/profilecache"
	"github.com/envoluntary/envoluntary/internal/adapters/resolver"
	"github.com/envoluntary/envoluntary/internal/adapters/telemetry/progrock"
	"github.com/envoluntary/envoluntary/internal/adapters/versionprobe"
	"github.com/envoluntary/envoluntary/internal/core/ports"
)

// CLIName is the program name used for XDG path construction and the
// prompt-hook template's command invocations.
const CLIName = "envoluntary"

// Container holds every adapter that does not depend on a per-invocation
// CLI flag. Path-dependent collaborators (the resolver, the cache
// directory) are constructed on demand via the methods below.
type Container struct {
	Logger       ports.Logger
	Editor       ports.EditorLauncher
	VersionProbe ports.VersionProbe
	CacheFactory ports.ProfileCacheFactory
	Harvester    ports.BashHarvester
	Telemetry    ports.Telemetry
}

// New builds a Container wired to real adapters.
func New() *Container {
	runner := nixrunner.New()
	telemetry := progrock.New()

	return &Container{
		Logger:       logger.New(),
		Editor:       editor.New(),
		VersionProbe: versionprobe.New(runner),
		CacheFactory: profilecache.NewFactory(runner, telemetry),
		Harvester:    harvester.New(),
		Telemetry:    telemetry,
	}
}

// Resolver builds the directory resolver against configPathOverride, or the
// XDG-derived default config path when it is empty.
func (c *Container) Resolver(configPathOverride string) (ports.DirectoryResolver, error) {
	path := configPathOverride
	if path == "" {
		p, err := configpath.Resolve(CLIName)
		if err != nil {
			return nil, err
		}
		path = p
	}
	return resolver.New(path), nil
}

// CacheDir resolves cacheDirOverride, or the XDG-derived default cache
// directory when it is empty.
func (c *Container) CacheDir(cacheDirOverride string) (string, error) {
	if cacheDirOverride != "" {
		return cacheDirOverride, nil
	}
	return configpath.ResolveCacheDir(CLIName)
}

// Emitter resolves a ports.ShellEmitter by shell name, as used by both
// `shell hook` and `shell export`.
func Emitter(shell string) (ports.ShellEmitter, error) {
	switch shell {
	case "bash":
		return emit.Bash{}, nil
	case "zsh":
		return emit.Zsh{}, nil
	case "fish":
		return emit.Fish{}, nil
	case "json":
		return emit.JSON{}, nil
	case "nushell":
		return emit.Nushell{}, nil
	default:
		return nil, fmt.Errorf("unsupported shell %q", shell)
	}
}
