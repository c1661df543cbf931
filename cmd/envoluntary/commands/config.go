package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the directory-to-flake configuration",
	}
	cmd.AddCommand(c.newConfigPrintPathCmd())
	cmd.AddCommand(c.newConfigEditCmd())
	cmd.AddCommand(c.newConfigAddEntryCmd())
	cmd.AddCommand(c.newConfigPrintMatchingEntriesCmd())
	return cmd
}

func (c *CLI) newConfigPrintPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print-path",
		Short: "Print the resolved path of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver, err := c.container.Resolver("")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resolver.ConfigPath())
			return err
		},
	}
}

func (c *CLI) newConfigEditCmd() *cobra.Command {
	var configPath, editorProgram string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the configuration file in an editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver, err := c.container.Resolver(configPath)
			if err != nil {
				return err
			}

			program := editorProgram
			if program == "" {
				program = os.Getenv("EDITOR")
			}
			if program == "" {
				return domain.ErrEditorNotFound
			}

			return c.container.Editor.Launch(program, resolver.ConfigPath())
		},
	}

	cmd.Flags().StringVar(&configPath, "config-path", "", "path to the configuration file")
	cmd.Flags().StringVar(&editorProgram, "editor-program", "", "editor program to launch, overriding $EDITOR")
	return cmd
}

func (c *CLI) newConfigAddEntryCmd() *cobra.Command {
	var configPath, patternAdjacent string

	cmd := &cobra.Command{
		Use:   "add-entry <PATTERN> <FLAKE_REF>",
		Short: "Append a directory pattern to flake reference mapping",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			impure, err := parseOptionalBool(cmd, "impure")
			if err != nil {
				return err
			}

			resolver, err := c.container.Resolver(configPath)
			if err != nil {
				return err
			}
			return resolver.AddEntry(args[0], args[1], patternAdjacent, impure)
		},
	}

	cmd.Flags().StringVar(&configPath, "config-path", "", "path to the configuration file")
	cmd.Flags().StringVar(&patternAdjacent, "pattern-adjacent", "", "regex an entry of the directory or of one of its ancestors must match")
	cmd.Flags().Bool("impure", false, "pass --impure to nix for this entry")
	return cmd
}

func (c *CLI) newConfigPrintMatchingEntriesCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "print-matching-entries <PATH>",
		Short: "Print, as JSON, the configured entries matching PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := c.container.Resolver(configPath)
			if err != nil {
				return err
			}

			entries, err := resolver.Match(args[0])
			if err != nil {
				return err
			}

			out := make([]matchingEntry, len(entries))
			for i, e := range entries {
				out[i] = matchingEntryOf(e)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&configPath, "config-path", "", "path to the configuration file")
	return cmd
}

// matchingEntry is the JSON shape printed by print-matching-entries: each
// compiled pattern is rendered as its source text (regexp.Regexp.String)
// rather than as the regexp.Regexp value.
type matchingEntry struct {
	Pattern         string  `json:"pattern"`
	FlakeReference  string  `json:"flake_reference"`
	PatternAdjacent *string `json:"pattern_adjacent"`
	Impure          *bool   `json:"impure"`
}

func matchingEntryOf(e domain.ConfigEntry) matchingEntry {
	out := matchingEntry{
		Pattern:        e.Pattern.String(),
		FlakeReference: e.FlakeReference,
		Impure:         e.Impure,
	}
	if e.PatternAdjacent != nil {
		s := e.PatternAdjacent.String()
		out.PatternAdjacent = &s
	}
	return out
}
