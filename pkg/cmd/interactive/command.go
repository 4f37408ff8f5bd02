package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/birdayz/symcheck/pkg/app"
	"github.com/birdayz/symcheck/pkg/icon"
	"github.com/birdayz/symcheck/pkg/render"
	"github.com/birdayz/symcheck/pkg/session"
)

// LineReader reads one submitted line for the given prompt label.
type LineReader interface {
	ReadLine(label string) (string, error)
}

type promptReader struct{}

func (promptReader) ReadLine(label string) (string, error) {
	p := promptui.Prompt{Label: label}
	return p.Run()
}

// NewCommand returns the "symcheck interactive" command.
func NewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Type or paste both inputs at a prompt and check them",
		Long: `Start an interactive session with a left and a right box.

Submitting the left box moves to the right box; submitting the right box runs
the check and starts over. End a line with \ to continue the same box on a
new line, or with \\ to enter a single trailing backslash. The prompt shows
the result of the last check until you type again. Ctrl-C or Ctrl-D quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), a, session.New(), promptReader{})
		},
	}
}

// Run drives s from lines read by r until r reports end of input or ctx is
// done.
func Run(ctx context.Context, a *app.App, s *session.Session, r LineReader) error {
	for ctx.Err() == nil {
		line, err := r.ReadLine(label(a, s))
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
				// User cancelled. Not an error.
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		switch {
		case strings.HasSuffix(line, `\\`):
			s.Insert(strings.TrimSuffix(line, `\`))
		case strings.HasSuffix(line, `\`):
			s.Insert(strings.TrimSuffix(line, `\`))
			s.Handle(session.KeyEvent{Key: session.KeyEnter, Shift: true})
			continue
		default:
			s.Insert(line)
		}

		if s.Focus() == session.Left {
			s.Handle(session.KeyEvent{Key: session.KeyTab})
			continue
		}

		a.Logger.Printf("checking %q against %q", s.Text(session.Left), s.Text(session.Right))
		_, res := s.Handle(session.KeyEvent{Key: session.KeyEnter})
		left, right := s.Counts()
		view := render.Build(*res, render.Counts{Left: left, Right: right}, a.Width())
		if err := a.ViewWriter().Write(view); err != nil {
			return err
		}
		s.Reset()
	}
	return nil
}

// label is the prompt for the focused box. After a check it carries the
// status glyph until the next edit.
func label(a *app.App, s *session.Session) string {
	left, right := s.Counts()
	l := fmt.Sprintf("%s [%d|%d]", s.Focus(), left, right)

	var (
		kind icon.Kind
		fg   color.Attribute
	)
	switch s.Status() {
	case session.Matched:
		kind, fg = icon.Success, color.FgGreen
	case session.Mismatched:
		kind, fg = icon.Failure, color.FgRed
	default:
		return l
	}
	c := color.New(fg)
	if a.UseColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return l + " " + c.Sprint(kind.Glyph())
}
