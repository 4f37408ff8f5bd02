// Package session models the two text boxes of the checker and the keys that
// drive them.
package session

import (
	"unicode/utf8"

	"github.com/birdayz/symcheck/pkg/compare"
)

// Key is the subset of keys the session reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyTab
)

// KeyEvent is a key press delivered while one of the boxes has focus.
type KeyEvent struct {
	Key   Key
	Shift bool
	Ctrl  bool
	Alt   bool
}

// Action is the logical meaning of a key press.
type Action int

const (
	// ActionNone leaves the key to the text box.
	ActionNone Action = iota
	// ActionTrigger runs a check.
	ActionTrigger
	// ActionNewline inserts a literal newline into the focused box.
	ActionNewline
	// ActionFocusSwitch moves focus to the other box.
	ActionFocusSwitch
)

func (a Action) String() string {
	switch a {
	case ActionTrigger:
		return "trigger"
	case ActionNewline:
		return "newline"
	case ActionFocusSwitch:
		return "focus-switch"
	default:
		return "none"
	}
}

// Classify maps a key press to an action.
func Classify(ev KeyEvent) Action {
	switch ev.Key {
	case KeyTab:
		return ActionFocusSwitch
	case KeyEnter:
		switch {
		case !ev.Shift && !ev.Ctrl && !ev.Alt:
			return ActionTrigger
		case ev.Shift && !ev.Ctrl && !ev.Alt:
			return ActionNewline
		}
	}
	return ActionNone
}

// Side identifies one of the two boxes.
type Side int

const (
	Left Side = iota
	Right
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Status is the state of the match indicator.
type Status int

const (
	// Neutral is the state before the first check and after any edit.
	Neutral Status = iota
	Matched
	Mismatched
)

// Session holds the contents of both boxes and which one has focus.
// It is not safe for concurrent use.
type Session struct {
	text   [2]string
	counts [2]int
	focus  Side
	status Status
}

// New returns an empty session with focus on the left box.
func New() *Session {
	return &Session{}
}

// Focus returns the side currently receiving input.
func (s *Session) Focus() Side { return s.focus }

// Text returns the contents of side.
func (s *Session) Text(side Side) string { return s.text[side] }

// Insert appends text to the focused box.
func (s *Session) Insert(text string) {
	if text == "" {
		return
	}
	s.text[s.focus] += text
	s.changed(s.focus)
}

// Counts returns the number of code points in each box.
func (s *Session) Counts() (left, right int) {
	return s.counts[Left], s.counts[Right]
}

// Status returns the indicator state.
func (s *Session) Status() Status { return s.status }

// Check compares both boxes and updates the indicator.
func (s *Session) Check() compare.Result {
	res := compare.Compare(s.text[Left], s.text[Right])
	if res.Match {
		s.status = Matched
	} else {
		s.status = Mismatched
	}
	return res
}

// Handle applies ev to the session. A trigger returns the check result;
// every other action returns nil.
func (s *Session) Handle(ev KeyEvent) (Action, *compare.Result) {
	action := Classify(ev)
	switch action {
	case ActionTrigger:
		res := s.Check()
		return action, &res
	case ActionNewline:
		s.Insert("\n")
	case ActionFocusSwitch:
		s.focus = s.focus.Other()
	}
	return action, nil
}

// Reset clears both boxes and returns focus to the left one. The indicator
// keeps the last result until the next edit.
func (s *Session) Reset() {
	*s = Session{status: s.status}
}

func (s *Session) changed(side Side) {
	s.counts[side] = utf8.RuneCountInString(s.text[side])
	s.status = Neutral
}
