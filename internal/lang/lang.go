// Package lang describes the immutable identity of a heuristic: the name,
// icon and color under which its matches are presented to a consumer.
package lang

// IconColor is an ANSI 8-bit color index (see
// https://en.wikipedia.org/wiki/ANSI_escape_code#8-bit), with a distinct
// value for when the owning match is the selected row in an interactive
// display.
type IconColor struct {
	Normal   uint8
	Selected uint8
}

// NewColor builds an IconColor that uses the same index whether or not the
// match is selected.
func NewColor(index uint8) IconColor {
	return IconColor{Normal: index, Selected: index}
}

// NewColorPair builds an IconColor with distinct normal/selected indices.
func NewColorPair(normal, selected uint8) IconColor {
	return IconColor{Normal: normal, Selected: selected}
}

// Lang is the static identity of a heuristic: its display name, a Nerd Font
// icon, a short abbreviation used when icons aren't supported, and the
// color used to render it. Two Langs are equal iff their Names are equal;
// values are shared, read-only, and never copied per-match.
type Lang struct {
	Name  string
	Icon  string
	Short string
	Color IconColor
}

func (l *Lang) String() string { return l.Name }

// CommentedLang records that a specific Lang's heuristic matched, along with
// the reason it gave for that particular match.
type CommentedLang struct {
	Lang    *Lang
	Comment string
}

func (c CommentedLang) String() string {
	return c.Lang.Name + " - " + c.Comment
}
