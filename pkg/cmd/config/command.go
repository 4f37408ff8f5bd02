package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/symcheck/pkg/app"
)

// NewCommand returns the "symcheck config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle symcheck configuration",
	}

	cmd.AddCommand(
		newViewCommand(a),
		newPathCommand(a),
		newSetCommand(a),
	)

	return cmd
}

func newViewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Display the configuration file contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Cfg.Encode(a.OutWriter)
		},
	}
}

func newPathCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Display the path of the configuration file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.Cfg.Path())
		},
	}
}

func newSetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "set KEY VALUE",
		Short:             "Set a configuration value",
		Example:           "  symcheck config set output json\n  symcheck config set color never",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: a.ValidConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "Set %s to %q.\n", args[0], args[1])
			return nil
		},
	}
}
