// Package props compares two Java properties bundles key by key.
package props

import (
	"fmt"
	"sort"

	"github.com/magiconair/properties"

	"github.com/birdayz/symcheck/pkg/compare"
)

// Status classifies one key of a bundle comparison.
type Status string

const (
	StatusMatch     Status = "match"
	StatusDiffers   Status = "differs"
	StatusLeftOnly  Status = "left-only"
	StatusRightOnly Status = "right-only"
)

// Entry is the comparison of a single key. For one-sided keys the missing
// side compares as the empty string.
type Entry struct {
	Key    string
	Status Status
	Result compare.Result
}

// Hidden reports whether either side of the entry hides a message.
func (e Entry) Hidden() bool {
	return e.Result.ShowDecoded()
}

// LoadFile reads a UTF-8 properties file. ${...} references are left
// unexpanded so values are compared exactly as written.
func LoadFile(path string) (*properties.Properties, error) {
	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := l.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load properties %q: %w", path, err)
	}
	return p, nil
}

// Compare walks the union of keys of left and right in sorted order.
func Compare(left, right *properties.Properties) []Entry {
	keys := make(map[string]struct{})
	for _, k := range left.Keys() {
		keys[k] = struct{}{}
	}
	for _, k := range right.Keys() {
		keys[k] = struct{}{}
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	entries := make([]Entry, 0, len(sorted))
	for _, k := range sorted {
		lv, lok := left.Get(k)
		rv, rok := right.Get(k)
		e := Entry{Key: k, Result: compare.Compare(lv, rv)}
		switch {
		case !rok:
			e.Status = StatusLeftOnly
		case !lok:
			e.Status = StatusRightOnly
		case e.Result.Match:
			e.Status = StatusMatch
		default:
			e.Status = StatusDiffers
		}
		entries = append(entries, e)
	}
	return entries
}
