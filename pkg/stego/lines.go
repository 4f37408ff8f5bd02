package stego

import "unicode/utf8"

// SplitLines splits s at line boundaries. Terminators are dropped and a
// trailing terminator does not produce an empty final line. "\r\n" counts as
// one boundary.
//
// Recognised terminators: \n \r \v \f \x1c \x1d \x1e \x85 U+2028 U+2029.
func SplitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if i < start {
			// second half of a "\r\n" pair
			continue
		}
		if !isLineBreak(r) {
			continue
		}
		lines = append(lines, s[start:i])
		next := i + utf8.RuneLen(r)
		if r == '\r' && next < len(s) && s[next] == '\n' {
			next++
		}
		start = next
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
