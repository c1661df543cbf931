package commands

import (
	"fmt"
	"os"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"

	"github.com/envoluntary/envoluntary/internal/adapters/profilecache"
	"github.com/envoluntary/envoluntary/internal/core/domain"
	"github.com/envoluntary/envoluntary/internal/promptstate"
	"github.com/envoluntary/envoluntary/internal/wiring"
)

var hookShellNames = []string{"bash", "zsh", "fish", "nushell"}
var exportShellNames = []string{"bash", "zsh", "fish", "json", "nushell"}

func (c *CLI) newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Check, hook, and export the per-directory shell environment",
	}
	cmd.AddCommand(c.newShellCheckNixVersionCmd())
	cmd.AddCommand(c.newShellHookCmd())
	cmd.AddCommand(c.newShellExportCmd())
	cmd.AddCommand(c.newShellPrintCachePathCmd())
	return cmd
}

func (c *CLI) newShellCheckNixVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-nix-version",
		Short: "Verify the installed nix satisfies the minimum supported version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.container.VersionProbe.CheckVersion(cmd.Context())
		},
	}
}

func (c *CLI) newShellHookCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "hook <bash|fish|zsh|nushell>",
		Short:     "Print the shell-idiomatic prompt hook",
		Args:      cobra.ExactArgs(1),
		ValidArgs: hookShellNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			emitter, err := wiring.Emitter(shell)
			if err != nil {
				return err
			}

			exe, err := os.Executable()
			if err != nil {
				return err
			}
			exportCommand := fmt.Sprintf("%s shell export %s", shellescape.Quote(exe), shell)

			return emitter.EmitHook(cmd.OutOrStdout(), wiring.CLIName, exportCommand)
		},
	}
}

func (c *CLI) newShellExportCmd() *cobra.Command {
	var configPath, cacheDir, currentDir string
	var flakeReferences []string
	var forceUpdate bool

	cmd := &cobra.Command{
		Use:       "export <bash|fish|zsh|json|nushell>",
		Short:     "Print the shell statements that load (or unload) the matched flakes",
		Args:      cobra.ExactArgs(1),
		ValidArgs: exportShellNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			emitter, err := wiring.Emitter(shell)
			if err != nil {
				return err
			}

			impure, err := parseOptionalBool(cmd, "impure")
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := c.container.VersionProbe.CheckVersion(ctx); err != nil {
				return err
			}

			dir, err := c.container.CacheDir(cacheDir)
			if err != nil {
				return err
			}

			deps := promptstate.Dependencies{
				CacheDir:       dir,
				CacheFactory:   c.container.CacheFactory,
				Harvester:      c.container.Harvester,
				Telemetry:      c.container.Telemetry,
				ImpureOverride: impure,
				ForceUpdate:    forceUpdate,
			}
			if c.container.Telemetry != nil {
				defer func() { _ = c.container.Telemetry.Close() }()
			}

			environ := domain.FromEnviron(os.Environ())

			var plan promptstate.Plan
			if len(flakeReferences) > 0 {
				configs := make([]domain.ConfigEntry, len(flakeReferences))
				for i, ref := range flakeReferences {
					configs[i] = domain.ConfigEntry{FlakeReference: ref}
				}
				plan, err = promptstate.RunWithConfigs(ctx, configs, deps, environ)
			} else {
				resolver, rerr := c.container.Resolver(configPath)
				if rerr != nil {
					return rerr
				}
				plan, err = promptstate.Run(ctx, resolver, deps, currentDir, environ)
			}
			if err != nil {
				return err
			}

			return plan.Emit(cmd.OutOrStdout(), emitter)
		},
	}

	cmd.Flags().StringVar(&configPath, "config-path", "", "path to the configuration file")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "path to the profile cache directory")
	cmd.Flags().StringSliceVar(&flakeReferences, "flake-references", nil, "explicit flake references, bypassing directory matching")
	cmd.Flags().Bool("impure", false, "pass --impure to nix for every matched entry")
	cmd.Flags().BoolVar(&forceUpdate, "force-update", false, "force a profile cache rebuild regardless of freshness")
	cmd.Flags().StringVar(&currentDir, "current-dir", "", "directory to match against, overriding the process working directory")
	return cmd
}

func (c *CLI) newShellPrintCachePathCmd() *cobra.Command {
	var cacheDir, flakeReference string

	cmd := &cobra.Command{
		Use:   "print-cache-path",
		Short: "Print the cache entry path for a flake reference, without updating it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flakeReference == "" {
				return fmt.Errorf("--flake-reference is required")
			}

			dir, err := c.container.CacheDir(cacheDir)
			if err != nil {
				return err
			}

			path, err := profilecache.CachePath(dir, flakeReference)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "path to the profile cache directory")
	cmd.Flags().StringVar(&flakeReference, "flake-reference", "", "flake reference to compute the cache path for")
	return cmd
}
