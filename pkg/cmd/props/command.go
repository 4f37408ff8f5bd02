package props

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birdayz/symcheck/pkg/app"
	pkgprops "github.com/birdayz/symcheck/pkg/props"
	"github.com/birdayz/symcheck/pkg/render"
)

type entryReport struct {
	Key    string     `json:"key" msgpack:"key"`
	Status string     `json:"status" msgpack:"status"`
	Report app.Report `json:"report" msgpack:"report"`
}

// NewCommand returns the "symcheck props" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		onlyDiffFlag bool
		exitCodeFlag bool
		templateFlag string
		outputFlag   app.OutputFormat
	)

	cmd := &cobra.Command{
		Use:   "props LEFT.properties RIGHT.properties",
		Short: "Compare two properties bundles key by key and decode hidden text in values",
		Example: `  symcheck props messages_en.properties messages_de.properties
  symcheck props a.properties b.properties --only-diff -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := pkgprops.LoadFile(args[0])
			if err != nil {
				return err
			}
			right, err := pkgprops.LoadFile(args[1])
			if err != nil {
				return err
			}

			var (
				entries  []pkgprops.Entry
				mismatch bool
			)
			for _, e := range pkgprops.Compare(left, right) {
				clean := e.Status == pkgprops.StatusMatch && !e.Hidden()
				if !clean {
					mismatch = true
				}
				if onlyDiffFlag && clean {
					continue
				}
				entries = append(entries, e)
			}
			a.Logger.Printf("%d keys listed", len(entries))

			format := a.ResolveOutput(outputFlag)
			if format != app.OutputFormatText {
				reports := make([]entryReport, 0, len(entries))
				for _, e := range entries {
					lv, _ := left.Get(e.Key)
					rv, _ := right.Get(e.Key)
					reports = append(reports, entryReport{
						Key:    e.Key,
						Status: string(e.Status),
						Report: app.NewReport(e.Result, render.CountsOf(lv, rv)),
					})
				}
				if err := a.WriteEncoded(format, templateFlag, reports); err != nil {
					return err
				}
			} else {
				w := app.NewTabWriter(a.OutWriter)
				if !a.NoHeaderFlag {
					fmt.Fprintf(w, "KEY\tSTATUS\tHIDDEN LEFT\tHIDDEN RIGHT\t\n")
				}
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", e.Key, e.Status,
						oneLine(e.Result.Left.String()), oneLine(e.Result.Right.String()))
				}
				w.Flush()
			}

			if mismatch && exitCodeFlag {
				cmd.SilenceErrors = true
				return app.ErrMismatch
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyDiffFlag, "only-diff", false, "Hide keys that match and hide nothing")
	cmd.Flags().BoolVar(&exitCodeFlag, "exit-code", false, "Exit with status 1 when any key differs or hides text")
	a.AddNoHeadersFlag(cmd)
	a.AddOutputFlags(cmd, &outputFlag, &templateFlag)
	return cmd
}

func oneLine(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(render.Escape(s), "\n", `\n`)
}
