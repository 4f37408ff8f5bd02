package inspect

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/symcheck/pkg/app"
	pkginspect "github.com/birdayz/symcheck/pkg/inspect"
	"github.com/birdayz/symcheck/pkg/source"
)

type inspectResult struct {
	Summary pkginspect.Summary `json:"summary" msgpack:"summary"`
	Runes   []pkginspect.Rune  `json:"runes" msgpack:"runes"`
}

// NewCommand returns the "symcheck inspect" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		allFlag      bool
		htmlFlag     bool
		templateFlag string
		outputFlag   app.OutputFormat
	)

	cmd := &cobra.Command{
		Use:   "inspect INPUT",
		Short: "List the code points of an input, naming every variation selector",
		Long: `List the code points of an input with their Unicode names. By default
only non-ASCII code points are shown; --all lists every one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.NewLoader(source.Options{HTML: htmlFlag, TrimNewline: true}).Load(source.Parse(args[0]))
			if err != nil {
				return err
			}

			var runes []pkginspect.Rune
			for _, r := range pkginspect.Runes(text) {
				if allFlag || r.Value > 0x7F {
					runes = append(runes, r)
				}
			}
			res := inspectResult{Summary: pkginspect.Summarize(text), Runes: runes}

			format := a.ResolveOutput(outputFlag)
			if format != app.OutputFormatText {
				return a.WriteEncoded(format, templateFlag, res)
			}

			w := app.NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "LINE\tCOL\tCODE\tBYTE\tNAME\t\n")
			}
			for _, r := range runes {
				b := "-"
				if r.Selector {
					b = fmt.Sprintf("0x%02X", r.Byte)
				}
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t\n", r.Line, r.Column, r.Code, b, r.Name)
			}
			w.Flush()

			s := res.Summary
			fmt.Fprintf(a.OutWriter, "%d code points, %d selectors after %d carriers on %d line(s)\n",
				s.Runes, s.Selectors, s.Carriers, s.Lines)
			return nil
		},
	}

	cmd.Flags().BoolVar(&allFlag, "all", false, "List ASCII code points too")
	cmd.Flags().BoolVar(&htmlFlag, "html", false, "Treat the input as HTML and inspect its visible text")
	a.AddNoHeadersFlag(cmd)
	a.AddOutputFlags(cmd, &outputFlag, &templateFlag)
	return cmd
}
