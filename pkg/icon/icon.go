// Package icon holds the success and failure indicator images shown next to
// the match status.
package icon

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

//go:embed assets/check.b64
var checkBase64 string

//go:embed assets/alert.b64
var alertBase64 string

// Kind selects one of the two indicator icons.
type Kind int

const (
	Success Kind = iota
	Failure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Glyph is the single-character stand-in used when images are not drawn.
func (k Kind) Glyph() string {
	if k == Success {
		return "✔"
	}
	return "✖"
}

func (k Kind) data() (string, error) {
	switch k {
	case Success:
		return checkBase64, nil
	case Failure:
		return alertBase64, nil
	default:
		return "", fmt.Errorf("unknown icon %v", k)
	}
}

// Load decodes the embedded image for k.
func Load(k Kind) (image.Image, error) {
	enc, err := k.data()
	if err != nil {
		return nil, err
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(enc))
	if err != nil {
		return nil, fmt.Errorf("decode %v icon: %w", k, err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %v icon png: %w", k, err)
	}
	return img, nil
}

// HalfBlocks draws img with one "▀" per pixel column and two pixel rows per
// text line, using 24-bit ANSI colours. Transparent pixels keep the
// terminal's default colours.
func HalfBlocks(img image.Image) []string {
	b := img.Bounds()
	var lines []string
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			top, topOK := rgb(img, x, y)
			bottom, bottomOK := rgb(img, x, y+1)
			if y+1 >= b.Max.Y {
				bottomOK = false
			}
			switch {
			case topOK && bottomOK:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", top[0], top[1], top[2], bottom[0], bottom[1], bottom[2])
			case topOK:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm▀", top[0], top[1], top[2])
			case bottomOK:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm▄", bottom[0], bottom[1], bottom[2])
			default:
				sb.WriteByte(' ')
			}
			sb.WriteString("\x1b[0m")
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func rgb(img image.Image, x, y int) ([3]uint8, bool) {
	r, g, b, a := img.At(x, y).RGBA()
	if a < 0x8000 {
		return [3]uint8{}, false
	}
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}, true
}
