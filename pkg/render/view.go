// Package render turns a comparison result into something a terminal can
// show. Build is pure; Writer does the printing.
package render

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/birdayz/symcheck/pkg/compare"
	"github.com/birdayz/symcheck/pkg/icon"
)

const (
	MatchLabel    = "MATCH"
	MismatchLabel = "NOT MATCH"
	MatchColor    = "#2ecc71"
	MismatchColor = "#e74c3c"

	// HiddenHeader heads every non-empty decoded column.
	HiddenHeader = "Hidden:"

	gutter         = 2
	minColumnWidth = 10
)

// Counts are the code point counts of both inputs.
type Counts struct {
	Left  int
	Right int
}

// CountsOf counts the code points of both inputs.
func CountsOf(left, right string) Counts {
	return Counts{Left: utf8.RuneCountInString(left), Right: utf8.RuneCountInString(right)}
}

// Status describes the match indicator.
type Status struct {
	Match bool
	Label string
	Color string
	Icon  icon.Kind
}

// Panel is the side-by-side decoded message area. Left and Right always have
// the same number of lines, each at most Width code points long.
type Panel struct {
	Visible bool
	Width   int
	Left    []string
	Right   []string
}

// View is the complete set of instructions for one results display.
type View struct {
	Status Status
	Counts Counts
	Panel  Panel
}

// Build derives the view for res. width is the space available for the whole
// panel.
func Build(res compare.Result, counts Counts, width int) View {
	v := View{Counts: counts}
	if res.Match {
		v.Status = Status{Match: true, Label: MatchLabel, Color: MatchColor, Icon: icon.Success}
	} else {
		v.Status = Status{Label: MismatchLabel, Color: MismatchColor, Icon: icon.Failure}
	}

	if !res.ShowDecoded() {
		return v
	}

	col := ColumnWidth(width)
	left := Wrap(column(res.Left.String()), col)
	right := Wrap(column(res.Right.String()), col)
	for len(left) < len(right) {
		left = append(left, "")
	}
	for len(right) < len(left) {
		right = append(right, "")
	}
	v.Panel = Panel{Visible: true, Width: col, Left: left, Right: right}
	return v
}

// ColumnWidth is the width of one decoded column when the panel has width
// code points available.
func ColumnWidth(width int) int {
	w := width/2 - gutter
	if w < minColumnWidth {
		return minColumnWidth
	}
	return w
}

func column(msg string) string {
	if msg == "" {
		return ""
	}
	return HiddenHeader + "\n" + Escape(msg)
}

// Escape replaces control and format characters other than newline with Go
// escape sequences, so a decoded payload cannot drive the terminal or reorder
// the text around it.
func Escape(s string) string {
	if strings.IndexFunc(s, needsEscape) < 0 {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if !needsEscape(r) {
			sb.WriteRune(r)
			continue
		}
		q := strconv.QuoteRune(r)
		sb.WriteString(q[1 : len(q)-1])
	}
	return sb.String()
}

func needsEscape(r rune) bool {
	return r != '\n' && (unicode.IsControl(r) || unicode.Is(unicode.Cf, r))
}

// Wrap breaks s into lines of at most width code points. Existing newlines
// are kept and every other code point is kept in order, so joining the lines
// of one paragraph gives it back. Lines break after a space where possible;
// longer words are split. An empty s yields no lines.
func Wrap(s string, width int) []string {
	if s == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		out = append(out, wrapParagraph(para, width)...)
	}
	return out
}

func wrapParagraph(para string, width int) []string {
	rs := []rune(para)
	var lines []string
	for len(rs) > width {
		cut := width
		if !unicode.IsSpace(rs[width]) {
			for i := width; i > 0; i-- {
				if unicode.IsSpace(rs[i-1]) {
					cut = i
					break
				}
			}
		}
		lines = append(lines, string(rs[:cut]))
		rs = rs[cut:]
	}
	return append(lines, string(rs))
}
