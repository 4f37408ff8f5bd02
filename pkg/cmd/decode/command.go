package decode

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/birdayz/symcheck/pkg/app"
	"github.com/birdayz/symcheck/pkg/render"
	"github.com/birdayz/symcheck/pkg/source"
	"github.com/birdayz/symcheck/pkg/stego"
)

// NewCommand returns the "symcheck decode" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		htmlFlag     bool
		linesFlag    bool
		templateFlag string
		outputFlag   app.OutputFormat
	)

	cmd := &cobra.Command{
		Use:   "decode INPUT...",
		Short: "Print the text hidden in each input",
		Example: `  symcheck decode "$(pbpaste)"
  symcheck decode @message.txt --lines
  symcheck decode @a.txt @b.txt -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := a.NewLoader(source.Options{HTML: htmlFlag, TrimNewline: true})
			texts, err := loader.LoadAll(args)
			if err != nil {
				return err
			}

			sides := make([]app.SideReport, 0, len(texts))
			msgs := make([]stego.Message, 0, len(texts))
			for _, text := range texts {
				msg := stego.Decode(text)
				msgs = append(msgs, msg)
				sides = append(sides, app.NewSideReport(msg, utf8.RuneCountInString(text)))
				if n := msg.InvalidLines(); n > 0 {
					a.Logger.Printf("%d line(s) carried bytes that are not valid UTF-8", n)
				}
			}

			format := a.ResolveOutput(outputFlag)
			if format != app.OutputFormatText {
				if len(sides) == 1 {
					return a.WriteEncoded(format, templateFlag, sides[0])
				}
				return a.WriteEncoded(format, templateFlag, sides)
			}

			for i, msg := range msgs {
				if len(msgs) > 1 {
					fmt.Fprintf(a.OutWriter, "==> %s <==\n", args[i])
				}
				if msg.Empty() {
					fmt.Fprintln(a.ErrWriter, "no hidden message")
					continue
				}
				if !linesFlag {
					fmt.Fprintln(a.OutWriter, render.Escape(msg.String()))
					continue
				}
				w := app.NewTabWriter(a.OutWriter)
				if !a.NoHeaderFlag {
					fmt.Fprintf(w, "LINE\tBYTES\tTEXT\t\n")
				}
				for _, l := range msg.Lines {
					fmt.Fprintf(w, "%d\t%d\t%s\t\n", l.Number, len(l.Bytes), render.Escape(l.Text))
				}
				w.Flush()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&htmlFlag, "html", false, "Treat inputs as HTML and decode their visible text")
	cmd.Flags().BoolVar(&linesFlag, "lines", false, "Show each decoded line with its line number")
	a.AddNoHeadersFlag(cmd)
	a.AddOutputFlags(cmd, &outputFlag, &templateFlag)
	return cmd
}
