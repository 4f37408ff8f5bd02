package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/birdayz/symcheck/pkg/icon"
)

// Writer prints views to a terminal.
type Writer struct {
	Out io.Writer
	// Color enables ANSI colours.
	Color bool
	// Icons draws the indicator image instead of its glyph. It has no effect
	// without Color.
	Icons bool
}

func (w *Writer) paint(hex string, attrs ...color.Attribute) *color.Color {
	fg := color.FgRed
	if hex == MatchColor {
		fg = color.FgGreen
	}
	c := color.New(append([]color.Attribute{fg}, attrs...)...)
	if w.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// WriteCounts prints the code point counts of both inputs. hex selects the
// colour; an empty hex prints them plain.
func (w *Writer) WriteCounts(counts Counts, hex string) error {
	line := fmt.Sprintf("left: %d  right: %d", counts.Left, counts.Right)
	if hex == "" {
		_, err := fmt.Fprintln(w.Out, line)
		return err
	}
	_, err := w.paint(hex).Fprintln(w.Out, line)
	return err
}

// Write prints v: counts, the match indicator and, when visible, the decoded
// panel.
func (w *Writer) Write(v View) error {
	if err := w.WriteCounts(v.Counts, v.Status.Color); err != nil {
		return err
	}

	glyph := v.Status.Icon.Glyph()
	if w.Icons && w.Color {
		img, err := icon.Load(v.Status.Icon)
		if err != nil {
			return err
		}
		for _, l := range icon.HalfBlocks(img) {
			if _, err := fmt.Fprintln(w.Out, l); err != nil {
				return err
			}
		}
		glyph = ""
	}

	label := w.paint(v.Status.Color, color.Bold).Sprint(v.Status.Label)
	if glyph != "" {
		label = w.paint(v.Status.Color).Sprint(glyph) + " " + label
	}
	if _, err := fmt.Fprintln(w.Out, label); err != nil {
		return err
	}

	if !v.Panel.Visible {
		return nil
	}
	dim := color.New(color.FgHiBlack)
	if w.Color {
		dim.EnableColor()
	} else {
		dim.DisableColor()
	}
	for i := range v.Panel.Left {
		row := fmt.Sprintf("%-*s │ %s", v.Panel.Width, v.Panel.Left[i], v.Panel.Right[i])
		if _, err := dim.Fprintln(w.Out, row); err != nil {
			return err
		}
	}
	return nil
}
