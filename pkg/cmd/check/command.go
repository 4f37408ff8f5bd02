package check

import (
	"github.com/spf13/cobra"

	"github.com/birdayz/symcheck/pkg/app"
	"github.com/birdayz/symcheck/pkg/compare"
	"github.com/birdayz/symcheck/pkg/render"
	"github.com/birdayz/symcheck/pkg/source"
)

// NewCommand returns the "symcheck check" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		htmlFlag        bool
		exitCodeFlag    bool
		keepNewlineFlag bool
		templateFlag    string
		outputFlag      app.OutputFormat
	)

	cmd := &cobra.Command{
		Use:   "check LEFT RIGHT",
		Short: "Check two inputs for exact equality and decode hidden text",
		Long: `Compare two inputs character for character and decode any payload hidden
in Unicode variation selectors. Each input is literal text, "@path" to read a
file or "-" to read stdin.`,
		Example: `  symcheck check "hello" "hello"
  symcheck check @original.txt @pasted.txt
  pbpaste | symcheck check - @expected.txt --exit-code
  symcheck check @page.html - --html -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := a.NewLoader(source.Options{HTML: htmlFlag, TrimNewline: !keepNewlineFlag})
			texts, err := loader.LoadAll(args)
			if err != nil {
				return err
			}
			left, right := texts[0], texts[1]

			res := compare.Compare(left, right)
			counts := render.CountsOf(left, right)
			a.Logger.Printf("compared %d and %d code points, match=%v", counts.Left, counts.Right, res.Match)

			format := a.ResolveOutput(outputFlag)
			if format == app.OutputFormatText {
				err = a.ViewWriter().Write(render.Build(res, counts, a.Width()))
			} else {
				err = a.WriteEncoded(format, templateFlag, app.NewReport(res, counts))
			}
			if err != nil {
				return err
			}

			if !res.Match && (exitCodeFlag || a.Cfg.ExitCode) {
				cmd.SilenceErrors = true
				return app.ErrMismatch
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&htmlFlag, "html", false, "Treat inputs as HTML and compare their visible text")
	cmd.Flags().BoolVar(&exitCodeFlag, "exit-code", false, "Exit with status 1 when the inputs differ")
	cmd.Flags().BoolVar(&keepNewlineFlag, "keep-newline", false, "Keep the trailing newline of file and stdin inputs")
	a.AddOutputFlags(cmd, &outputFlag, &templateFlag)
	return cmd
}
