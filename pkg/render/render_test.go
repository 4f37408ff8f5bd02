package render

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/birdayz/symcheck/pkg/compare"
	"github.com/birdayz/symcheck/pkg/icon"
)

// "hi" hidden after the carrier.
const hiddenHi = "a\U000E0158\U000E0159"

func TestBuild_Status(t *testing.T) {
	v := Build(compare.Compare("x", "x"), Counts{1, 1}, 80)
	require.Equal(t, Status{Match: true, Label: MatchLabel, Color: MatchColor, Icon: icon.Success}, v.Status)
	require.False(t, v.Panel.Visible)

	v = Build(compare.Compare("x", "y"), Counts{1, 1}, 80)
	require.Equal(t, Status{Label: MismatchLabel, Color: MismatchColor, Icon: icon.Failure}, v.Status)
}

func TestBuild_PanelOneSide(t *testing.T) {
	v := Build(compare.Compare(hiddenHi, "b"), Counts{3, 1}, 80)
	require.True(t, v.Panel.Visible)
	require.Equal(t, 38, v.Panel.Width)
	require.Equal(t, []string{HiddenHeader, "hi"}, v.Panel.Left)
	require.Equal(t, []string{"", ""}, v.Panel.Right)
}

func TestBuild_PanelEqualHeights(t *testing.T) {
	long := "a"
	for _, b := range []byte("one two three four") {
		long += string(rune(0xE0100 + int(b) - 16))
	}
	v := Build(compare.Compare(hiddenHi, long), Counts{}, 20)
	require.Equal(t, minColumnWidth, v.Panel.Width)
	require.Equal(t, len(v.Panel.Left), len(v.Panel.Right))
	require.Equal(t, []string{HiddenHeader, "one two ", "three four"}, v.Panel.Right)
	for _, l := range v.Panel.Right {
		require.LessOrEqual(t, utf8.RuneCountInString(l), v.Panel.Width)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"empty", "", 5, nil},
		{"fits", "abc", 5, []string{"abc"}},
		{"words", "ab cd ef", 5, []string{"ab cd", " ef"}},
		{"break after space", "ab cde", 5, []string{"ab ", "cde"}},
		{"space runs kept", "a    b", 10, []string{"a    b"}},
		{"only spaces", "   ", 10, []string{"   "}},
		{"spaces across lines", "      ", 4, []string{"    ", "  "}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newlines kept", "a\n\nb", 5, []string{"a", "", "b"}},
		{"runes", "äöüäöü", 3, []string{"äöü", "äöü"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Wrap(tt.in, tt.width))
		})
	}
}

func TestWrap_KeepsEveryRune(t *testing.T) {
	for _, in := range []string{"  lead and trail  ", "one  two   three    four", "x\ty  z"} {
		lines := Wrap(in, 6)
		require.Equal(t, in, strings.Join(lines, ""))
		for _, l := range lines {
			require.LessOrEqual(t, utf8.RuneCountInString(l), 6)
		}
	}
}

func TestBuild_PanelKeepsWhitespace(t *testing.T) {
	hide := func(s string) string {
		out := "a"
		for _, b := range []byte(s) {
			out += string(rune(0xE0100 + int(b) - 16))
		}
		return out
	}
	res := compare.Compare(hide("a    b"), hide("   "))
	require.Equal(t, "a    b", res.Left.String())
	require.Equal(t, "   ", res.Right.String())

	v := Build(res, Counts{}, 100)
	require.Equal(t, []string{HiddenHeader, "a    b"}, v.Panel.Left)
	require.Equal(t, []string{HiddenHeader, "   "}, v.Panel.Right)
}

func TestEscape(t *testing.T) {
	require.Equal(t, "plain\ntext", Escape("plain\ntext"))
	require.Equal(t, `\x1b[31mred`, Escape("\x1b[31mred"))
	require.Equal(t, `a\tb`, Escape("a\tb"))
	require.Equal(t, `abc\u202edef`, Escape("abc\u202edef"))
	require.Equal(t, `x\u200by`, Escape("x\u200by"))
	require.Equal(t, "h\u00e9", Escape("h\u00e9"))
}

func TestWriter_Plain(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{Out: &buf}
	v := Build(compare.Compare(hiddenHi, "b"), Counts{3, 1}, 40)
	require.NoError(t, w.Write(v))

	out := buf.String()
	require.Contains(t, out, "left: 3  right: 1")
	require.Contains(t, out, icon.Failure.Glyph()+" "+MismatchLabel)
	require.Contains(t, out, HiddenHeader)
	require.Contains(t, out, "hi")
	require.NotContains(t, out, "\x1b[")
}

func TestWriter_Icons(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{Out: &buf, Color: true, Icons: true}
	require.NoError(t, w.Write(Build(compare.Compare("a", "a"), Counts{1, 1}, 40)))

	out := buf.String()
	require.Contains(t, out, "\x1b[38;2;")
	require.NotContains(t, out, icon.Success.Glyph())
	require.Contains(t, out, MatchLabel)
	require.GreaterOrEqual(t, strings.Count(out, "\n"), 6)
}
