// Package commands implements the envoluntary CLI command tree: the
// `config` and `shell` subcommand families.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/envoluntary/envoluntary/internal/wiring"
)

// CLI is the root command, holding the adapter container every subcommand
// draws from.
type CLI struct {
	container *wiring.Container
	rootCmd   *cobra.Command
}

// New builds the full command tree against container.
func New(container *wiring.Container) *CLI {
	rootCmd := &cobra.Command{
		Use:           wiring.CLIName,
		Short:         "Automatic per-directory development environment loader",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{container: container, rootCmd: rootCmd}

	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newShellCmd())

	return c
}

// Execute runs the root command under ctx.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used by tests.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects the root command's output stream. Used by tests.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func parseOptionalBool(cmd *cobra.Command, flagName string) (*bool, error) {
	if !cmd.Flags().Changed(flagName) {
		return nil, nil
	}
	v, err := cmd.Flags().GetBool(flagName)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
