package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/nrjones-dev/dirsweep/internal/dirstats"
	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/match"
)

// renderer prints a scan's matches to a writer, deciding once at
// construction whether the destination is a color-capable terminal.
type renderer struct {
	w       io.Writer
	color   bool
	noIcons bool
}

// newRenderer wraps w for ANSI color output when it's a real terminal
// (go-isatty) and, on Windows, translates those sequences through
// go-colorable; anywhere else output stays plain. noIcons forces every
// Lang to render as its short abbreviation even on a color terminal.
func newRenderer(w io.Writer, noIcons bool) *renderer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		if color {
			w = colorable.NewColorable(f)
		}
	}
	return &renderer{w: w, color: color, noIcons: noIcons}
}

// printTable writes one line per match: its colored/abbreviated language
// tags, aggregated size, path, and dangerous marker, with matches in the
// order given.
func (r *renderer) printTable(matches []match.Data, stats []dirstats.DirStats) {
	for i, m := range matches {
		fmt.Fprintf(r.w, "%s  %-10s  %s%s\n",
			r.tags(m),
			r.size(stats[i]),
			m.Path,
			r.dangerMarker(m),
		)
	}
}

// tags renders every language that contributed to a match, space-separated,
// in the order they were recorded.
func (r *renderer) tags(m match.Data) string {
	var out string
	for i, cl := range m.Languages() {
		if i > 0 {
			out += " "
		}
		out += r.tag(cl.Lang)
	}
	return out
}

// tag renders one Lang as a colored icon, or its plain short abbreviation
// when icons are suppressed or the destination isn't a color terminal.
func (r *renderer) tag(l *lang.Lang) string {
	if !r.color || r.noIcons || l.Icon == "" {
		return "[" + l.Short + "]"
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", l.Color.Normal, l.Icon)
}

// size renders a match's aggregated size with go-humanize's binary-prefix
// formatting, or a placeholder when no readable file was found under it.
func (r *renderer) size(s dirstats.DirStats) string {
	if s.Size == nil {
		return "?"
	}
	return humanize.IBytes(*s.Size)
}

// dangerMarker appends a warning suffix to a match found under a
// system-owned subtree, surfaced per §6/§7 so the user never deletes it
// silently.
func (r *renderer) dangerMarker(m match.Data) string {
	if !m.Dangerous {
		return ""
	}
	return "  (dangerous)"
}
