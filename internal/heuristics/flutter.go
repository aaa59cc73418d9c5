package heuristics

import (
	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var flutterLang = &lang.Lang{Name: "Flutter", Short: "flutter", Color: lang.NewColor(39)}

const (
	flutterBuildWeight = 1000
	flutterToolWeight  = 2000
)

// Flutter flags a Flutter/Dart project's build output and tool cache once
// the project's .metadata and pubspec.yaml markers are both present.
type Flutter struct{}

func (Flutter) Info() *lang.Lang { return flutterLang }

func (Flutter) CheckForMatches(state *scanstate.MatchingState) {
	if _, ok := state.HasFile(".metadata"); !ok {
		return
	}
	if _, ok := state.HasFile("pubspec.yaml"); !ok {
		return
	}
	if _, ok := state.HasDirectory("build"); ok {
		state.AddMatch("build", ".metadata and pubspec.yaml were found alongside this directory.").Weight(flutterBuildWeight)
	}
	if _, ok := state.HasDirectory(".dart_tool"); ok {
		state.AddMatch(".dart_tool", ".metadata and pubspec.yaml were found alongside this directory.").Weight(flutterToolWeight)
	}
}
