package heuristics

import (
	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var rustLang = &lang.Lang{Name: "Rust", Short: "rs", Color: lang.NewColor(166)}

// Rust flags a crate's build output directory once the crate's manifest is
// present alongside it.
type Rust struct{}

func (Rust) Info() *lang.Lang { return rustLang }

func (Rust) CheckForMatches(state *scanstate.MatchingState) {
	if _, ok := state.HasFile("Cargo.toml"); !ok {
		return
	}
	if _, ok := state.HasDirectory("target"); ok {
		state.AddMatch("target", "Cargo.toml was found alongside this directory.")
	}
}
