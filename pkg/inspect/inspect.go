// Package inspect breaks a string down into its scalar values so hidden
// selectors become visible.
package inspect

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"

	"github.com/birdayz/symcheck/pkg/stego"
)

// Rune describes one scalar value of the input.
type Rune struct {
	Line   int    `json:"line" msgpack:"line"`
	Column int    `json:"column" msgpack:"column"`
	Value  rune   `json:"-" msgpack:"-"`
	Code   string `json:"code" msgpack:"code"`
	Name   string `json:"name" msgpack:"name"`
	// Selector is true when Value carries a payload byte.
	Selector bool `json:"selector" msgpack:"selector"`
	Byte     byte `json:"byte,omitempty" msgpack:"byte,omitempty"`
}

// Summary counts what a string is made of.
type Summary struct {
	Runes     int `json:"runes" msgpack:"runes"`
	Selectors int `json:"selectors" msgpack:"selectors"`
	// Carriers are non-selector runes directly followed by a selector.
	Carriers int `json:"carriers" msgpack:"carriers"`
	Lines    int `json:"lines" msgpack:"lines"`
}

// Runes lists every scalar value of s, line by line. Columns are 1-based and
// counted in scalar values.
func Runes(s string) []Rune {
	var out []Rune
	for i, line := range stego.SplitLines(s) {
		col := 0
		for _, r := range line {
			col++
			ru := Rune{
				Line:   i + 1,
				Column: col,
				Value:  r,
				Code:   fmt.Sprintf("U+%04X", r),
				Name:   Name(r),
			}
			if b, ok := stego.ByteOf(r); ok {
				ru.Selector = true
				ru.Byte = b
			}
			out = append(out, ru)
		}
	}
	return out
}

// Name returns the Unicode name of r, or a placeholder for unnamed values.
func Name(r rune) string {
	if n := runenames.Name(r); n != "" {
		return n
	}
	return "<unnamed>"
}

// Summarize counts runes, selectors and carriers in s.
func Summarize(s string) Summary {
	lines := stego.SplitLines(s)
	sum := Summary{Lines: len(lines)}
	for _, line := range lines {
		prevCarrier := false
		for _, r := range line {
			sum.Runes++
			if stego.IsSelector(r) {
				sum.Selectors++
				if prevCarrier {
					sum.Carriers++
					prevCarrier = false
				}
				continue
			}
			prevCarrier = true
		}
	}
	return sum
}
