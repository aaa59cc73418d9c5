package heuristics

import (
	"path/filepath"
	"strings"

	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var hiddenLang = &lang.Lang{Name: "Hidden", Short: "hidden", Color: lang.NewColor(243)}

// Hidden flags every dotfile and dotdirectory it sees. It carries no weight
// of its own and never suppresses descent by itself; it runs first so the
// flag it sets is already present on a child by the time later heuristics
// (and the final presentation layer) look at it.
type Hidden struct{}

func (Hidden) Info() *lang.Lang { return hiddenLang }

func (Hidden) CheckForMatches(state *scanstate.MatchingState) {
	for _, child := range state.GetAllContents() {
		name := filepath.Base(child.Path)
		if strings.HasPrefix(name, ".") {
			state.AddMatch(name, "Dotfile or dotdirectory.").Weight(0).Hidden()
		}
	}
}
