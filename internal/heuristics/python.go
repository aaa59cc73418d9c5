package heuristics

import (
	"path/filepath"
	"regexp"

	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var pythonLang = &lang.Lang{Name: "Python", Short: "py", Color: lang.NewColor(220)}

var pycacheRe = regexp.MustCompile(`^__pycache__$`)

// Python flags __pycache__ directories unconditionally: the bytecode cache
// is always regenerable and its presence alone is the marker, with no
// manifest prerequisite.
type Python struct{}

func (Python) Info() *lang.Lang { return pythonLang }

func (Python) CheckForMatches(state *scanstate.MatchingState) {
	for _, dir := range state.MatchDirectory(pycacheRe) {
		state.AddMatch(filepath.Base(dir), "Python bytecode cache.")
	}
}
