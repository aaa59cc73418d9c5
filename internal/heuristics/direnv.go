package heuristics

import (
	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var direnvLang = &lang.Lang{Name: "direnv", Short: "direnv", Color: lang.NewColor(108)}

const direnvWeight = 2000

// Direnv flags direnv's per-project cache once .envrc is present alongside
// it.
type Direnv struct{}

func (Direnv) Info() *lang.Lang { return direnvLang }

func (Direnv) CheckForMatches(state *scanstate.MatchingState) {
	if _, ok := state.HasFile(".envrc"); !ok {
		return
	}
	if _, ok := state.HasDirectory(".direnv"); ok {
		state.AddMatch(".direnv", ".envrc was found alongside this directory.").Weight(direnvWeight)
	}
}
