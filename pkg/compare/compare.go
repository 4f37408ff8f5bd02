// Package compare runs one comparison pass over two raw inputs.
package compare

import (
	"github.com/birdayz/symcheck/pkg/stego"
)

// Result is everything a presentation layer needs after a check.
type Result struct {
	// Match is true iff both inputs are the exact same string.
	Match bool
	Left  stego.Message
	Right stego.Message
}

// ShowDecoded reports whether at least one side hides a message.
func (r Result) ShowDecoded() bool {
	return !r.Left.Empty() || !r.Right.Empty()
}

// Compare checks a and b for exact equality and decodes each independently.
// No trimming, case folding or normalization is applied.
func Compare(a, b string) Result {
	return Result{
		Match: a == b,
		Left:  stego.Decode(a),
		Right: stego.Decode(b),
	}
}
