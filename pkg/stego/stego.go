// Package stego recovers byte payloads hidden with Unicode variation selectors.
//
// A payload is smuggled by appending one variation selector per byte after a
// visible carrier character. Bytes 0-15 map to U+FE00..U+FE0F and bytes
// 16-255 map to U+E0100..U+E01EF. Every scalar value of a line is examined on
// its own, so selectors are picked up wherever they appear.
package stego

import (
	"strings"
	"unicode/utf8"
)

// InvalidMarker replaces the text of a line whose payload is not valid UTF-8.
const InvalidMarker = "(invalid encoding)"

const (
	lowFirst  rune = 0xFE00
	lowLast   rune = 0xFE0F
	highFirst rune = 0xE0100
	highLast  rune = 0xE01EF

	highOffset = 16
)

// Line is the payload recovered from a single input line.
type Line struct {
	// Number is the 1-based position of the line in the input.
	Number int
	Bytes  []byte
	// Text is the decoded payload, or InvalidMarker when Valid is false.
	Text  string
	Valid bool
}

// Message holds the decoded lines of one input, in input order. Lines that
// carried no payload bytes are not present.
type Message struct {
	Lines []Line
}

// Empty reports whether no line carried a payload.
func (m Message) Empty() bool {
	return len(m.Lines) == 0
}

// String joins the line texts with a single newline.
func (m Message) String() string {
	if len(m.Lines) == 0 {
		return ""
	}
	texts := make([]string, len(m.Lines))
	for i, l := range m.Lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

// InvalidLines returns the number of lines whose payload failed to decode.
func (m Message) InvalidLines() int {
	n := 0
	for _, l := range m.Lines {
		if !l.Valid {
			n++
		}
	}
	return n
}

// ByteOf returns the payload byte carried by r. The second result is false
// when r is not a variation selector.
func ByteOf(r rune) (byte, bool) {
	switch {
	case r >= lowFirst && r <= lowLast:
		return byte(r - lowFirst), true
	case r >= highFirst && r <= highLast:
		return byte(r - highFirst + highOffset), true
	default:
		return 0, false
	}
}

// IsSelector reports whether r is one of the payload variation selectors.
func IsSelector(r rune) bool {
	_, ok := ByteOf(r)
	return ok
}

// DecodeLine collects the payload bytes of a single line. The second result
// is false when the line carries no bytes.
func DecodeLine(number int, line string) (Line, bool) {
	var buf []byte
	for _, r := range line {
		if b, ok := ByteOf(r); ok {
			buf = append(buf, b)
		}
	}
	if len(buf) == 0 {
		return Line{}, false
	}

	l := Line{Number: number, Bytes: buf}
	if utf8.Valid(buf) {
		l.Text = string(buf)
		l.Valid = true
	} else {
		l.Text = InvalidMarker
	}
	return l, true
}

// Decode extracts the hidden message of every line in s.
func Decode(s string) Message {
	var m Message
	for i, line := range SplitLines(s) {
		if l, ok := DecodeLine(i+1, line); ok {
			m.Lines = append(m.Lines, l)
		}
	}
	return m
}

// DecodeString is Decode(s).String(). It returns "" when s hides nothing.
func DecodeString(s string) string {
	return Decode(s).String()
}
