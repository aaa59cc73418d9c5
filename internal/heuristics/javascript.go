package heuristics

import (
	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var jsLang = &lang.Lang{Name: "JavaScript", Short: "js", Color: lang.NewColor(220)}

// JavaScript flags node_modules wherever it appears; the directory's own
// presence is the marker, with no manifest prerequisite.
type JavaScript struct{}

func (JavaScript) Info() *lang.Lang { return jsLang }

func (JavaScript) CheckForMatches(state *scanstate.MatchingState) {
	if _, ok := state.HasDirectory("node_modules"); ok {
		state.AddMatch("node_modules", "node_modules directory found.")
	}
}
