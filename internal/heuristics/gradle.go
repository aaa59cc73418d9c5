package heuristics

import (
	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var gradleLang = &lang.Lang{Name: "Gradle", Short: "gradle", Color: lang.NewColor(23)}

const (
	gradleBuildWeight = 1000
	gradleToolWeight  = 2000
)

// Gradle flags a Gradle project's build output and local cache once the
// project's wrapper script is present.
type Gradle struct{}

func (Gradle) Info() *lang.Lang { return gradleLang }

func (Gradle) CheckForMatches(state *scanstate.MatchingState) {
	_, hasSh := state.HasFile("gradlew")
	_, hasBat := state.HasFile("gradlew.bat")
	if !hasSh && !hasBat {
		return
	}
	if _, ok := state.HasDirectory("build"); ok {
		state.AddMatch("build", "A Gradle wrapper script was found alongside this directory.").Weight(gradleBuildWeight)
	}
	if _, ok := state.HasDirectory(".gradle"); ok {
		state.AddMatch(".gradle", "A Gradle wrapper script was found alongside this directory.").Weight(gradleToolWeight)
	}
}
