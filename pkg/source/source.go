// Package source resolves command line input specs into text.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	homedir "github.com/mitchellh/go-homedir"
)

// Kind says where the text of a Spec comes from.
type Kind int

const (
	Literal Kind = iota
	File
	Stdin
)

// Spec is a parsed input argument.
type Spec struct {
	Kind Kind
	// Value is the literal text or the file path.
	Value string
}

// ErrStdinReused is returned when more than one spec asks for stdin.
var ErrStdinReused = errors.New("stdin can only be used for one input")

// Parse interprets arg: "-" reads stdin, "@path" reads a file and anything
// else is taken literally. "@@text" escapes a literal that starts with "@".
func Parse(arg string) Spec {
	switch {
	case arg == "-":
		return Spec{Kind: Stdin}
	case strings.HasPrefix(arg, "@@"):
		return Spec{Kind: Literal, Value: arg[1:]}
	case strings.HasPrefix(arg, "@") && len(arg) > 1:
		return Spec{Kind: File, Value: arg[1:]}
	default:
		return Spec{Kind: Literal, Value: arg}
	}
}

// Options control how content is post-processed.
type Options struct {
	// HTML extracts the visible text of an HTML document.
	HTML bool
	// TrimNewline drops one trailing line break from file and stdin content.
	TrimNewline bool
}

// Loader reads specs. Stdin may be consumed at most once.
type Loader struct {
	Stdin   io.Reader
	Options Options

	stdinUsed bool
}

// Load returns the text of spec.
func (l *Loader) Load(spec Spec) (string, error) {
	var (
		text string
		err  error
	)
	switch spec.Kind {
	case Literal:
		text = spec.Value
	case File:
		text, err = readFile(spec.Value)
	case Stdin:
		if l.stdinUsed {
			return "", ErrStdinReused
		}
		l.stdinUsed = true
		text, err = readAll(l.Stdin)
	}
	if err != nil {
		return "", err
	}

	if l.Options.HTML {
		text, err = HTMLText(strings.NewReader(text))
		if err != nil {
			return "", err
		}
	} else if l.Options.TrimNewline && spec.Kind != Literal {
		text = trimNewline(text)
	}
	return text, nil
}

// LoadAll loads every arg in order.
func (l *Loader) LoadAll(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		text, err := l.Load(Parse(arg))
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}

// HTMLText returns the text content of the document body. Scripts, styles
// and noscript blocks are dropped; everything else, including invisible
// selectors, is kept as-is.
func HTMLText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find("script, style, noscript, template").Remove()
	return strings.TrimSpace(doc.Find("body").Text()), nil
}

func readFile(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand path %q: %w", path, err)
	}
	b, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

func readAll(r io.Reader) (string, error) {
	if r == nil {
		return "", errors.New("no stdin available")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func trimNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
