package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birdayz/symcheck/pkg/app"
	"github.com/birdayz/symcheck/pkg/cmd/check"
	"github.com/birdayz/symcheck/pkg/cmd/completion"
	symconfig "github.com/birdayz/symcheck/pkg/cmd/config"
	"github.com/birdayz/symcheck/pkg/cmd/decode"
	"github.com/birdayz/symcheck/pkg/cmd/inspect"
	"github.com/birdayz/symcheck/pkg/cmd/interactive"
	"github.com/birdayz/symcheck/pkg/cmd/props"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(app.New(), version, commit)
	return root.ExecuteContext(ctx)
}

// NewRootCommand assembles the command tree around a.
func NewRootCommand(a *app.App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:          "symcheck",
		Short:        "Compare two strings and reveal text hidden in Unicode variation selectors",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if a.OutWriter != os.Stdout {
				a.ColorableOut = a.OutWriter
			}

			return a.InitConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.symcheck/config)")
	root.PersistentFlags().StringVar(&a.ColorFlag, "color", "", "Colour output: auto, always or never (default from config, else auto)")
	root.PersistentFlags().IntVar(&a.WidthFlag, "width", 0, "Width available for the decoded panel (default from config, else 100)")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "Log diagnostics to stderr")
	_ = root.RegisterFlagCompletionFunc("color", app.CompleteColor)

	root.AddCommand(
		check.NewCommand(a),
		decode.NewCommand(a),
		inspect.NewCommand(a),
		props.NewCommand(a),
		interactive.NewCommand(a),
		symconfig.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root
}
