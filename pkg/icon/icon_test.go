package icon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	for _, k := range []Kind{Success, Failure} {
		t.Run(k.String(), func(t *testing.T) {
			img, err := Load(k)
			require.NoError(t, err)
			require.Equal(t, 8, img.Bounds().Dx())
			require.Equal(t, 8, img.Bounds().Dy())
		})
	}
}

func TestLoad_Colours(t *testing.T) {
	img, err := Load(Success)
	require.NoError(t, err)
	// bottom-left stroke of the tick
	c, ok := rgb(img, 0, 3)
	require.True(t, ok)
	require.Equal(t, [3]uint8{0x2e, 0xcc, 0x71}, c)

	_, ok = rgb(img, 0, 0)
	require.False(t, ok)

	img, err = Load(Failure)
	require.NoError(t, err)
	c, ok = rgb(img, 0, 7)
	require.True(t, ok)
	require.Equal(t, [3]uint8{0xe7, 0x4c, 0x3c}, c)
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load(Kind(7))
	require.Error(t, err)
}

func TestHalfBlocks(t *testing.T) {
	img, err := Load(Failure)
	require.NoError(t, err)

	lines := HalfBlocks(img)
	require.Len(t, lines, 4)
	require.True(t, strings.Contains(lines[3], "▀"))
}

func TestGlyph(t *testing.T) {
	require.NotEqual(t, Success.Glyph(), Failure.Glyph())
}
