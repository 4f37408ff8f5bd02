package compare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare_Match(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"", "", true},
		{"abc", "abc ", false},
		{"ABC", "abc", false},
		// precomposed vs combining: no normalization
		{"\u00e9", "e\u0301", false},
		{"a\ufe00", "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			require.Equal(t, tt.want, Compare(tt.a, tt.b).Match)
		})
	}
}

func TestCompare_DecodesEachSide(t *testing.T) {
	// "hi" hidden after the carrier: 'h' = 0x68, 'i' = 0x69.
	left := "a\U000E0158\U000E0159"
	res := Compare(left, "plain")

	require.False(t, res.Match)
	require.Equal(t, "hi", res.Left.String())
	require.True(t, res.Right.Empty())
	require.True(t, res.ShowDecoded())
}

func TestCompare_NothingHidden(t *testing.T) {
	res := Compare("same", "same")
	require.True(t, res.Match)
	require.False(t, res.ShowDecoded())
}

func TestCompare_SidesIndependent(t *testing.T) {
	left := "a\U000E0158\U000E0159"
	r1 := Compare(left, "x")
	r2 := Compare(left, "b\U000E0159")
	require.Equal(t, r1.Left, r2.Left)
}
