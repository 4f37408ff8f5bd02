package inspect

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestRunes(t *testing.T) {
	got := Runes("a\uFE01\nb\U000E01EF")
	require.Len(t, got, 4)

	require.Equal(t, Rune{Line: 1, Column: 1, Value: 'a', Code: "U+0061", Name: "LATIN SMALL LETTER A"}, got[0])
	require.Equal(t, Rune{
		Line: 1, Column: 2, Value: 0xFE01, Code: "U+FE01",
		Name: "VARIATION SELECTOR-2", Selector: true, Byte: 1,
	}, got[1])
	require.Equal(t, 2, got[3].Line)
	require.Equal(t, "U+E01EF", got[3].Code)
	require.Equal(t, "VARIATION SELECTOR-256", got[3].Name)
	require.Equal(t, byte(255), got[3].Byte)
}

func TestName_Unnamed(t *testing.T) {
	require.Equal(t, "<unnamed>", Name(0x10FFFF))
}

func TestSummarize(t *testing.T) {
	s := "\U0001F600\U000E0158\U000E0159 plain\nx\uFE00"
	require.Equal(t, Summary{Runes: 11, Selectors: 3, Carriers: 2, Lines: 2}, Summarize(s))
	require.Equal(t, Summary{}, Summarize(""))
}

func TestRune_MsgpackKeys(t *testing.T) {
	b, err := msgpack.Marshal(Runes("a\uFE01")[1])
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, msgpack.Unmarshal(b, &got))
	require.ElementsMatch(t, []string{"line", "column", "code", "name", "selector", "byte"}, keys(got))
	require.Equal(t, "U+FE01", got["code"])

	b, err = msgpack.Marshal(Summarize("a\uFE01"))
	require.NoError(t, err)
	got = nil
	require.NoError(t, msgpack.Unmarshal(b, &got))
	require.ElementsMatch(t, []string{"runes", "selectors", "carriers", "lines"}, keys(got))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
