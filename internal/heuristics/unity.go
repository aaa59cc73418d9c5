package heuristics

import (
	"strings"

	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var unityLang = &lang.Lang{Name: "Unity", Short: "unity", Color: lang.NewColor(240)}

// unityRegenerable lists the Unity project subdirectories the editor
// rebuilds on demand from source assets and project settings. Each is
// checked under both its conventional capitalization and an all-lowercase
// variant, since some Unity tooling versions created the cache directories
// in lowercase.
var unityRegenerable = []string{"Library", "Logs", "Obj", "Temp", "UserSettings", "MemoryCaptures", "Recordings"}

// Unity flags a Unity project's regenerable working directories once the
// project's Assets, Packages, and ProjectSettings directories are all
// present.
type Unity struct{}

func (Unity) Info() *lang.Lang { return unityLang }

func (Unity) CheckForMatches(state *scanstate.MatchingState) {
	for _, marker := range []string{"Assets", "Packages", "ProjectSettings"} {
		if _, ok := state.HasDirectory(marker); !ok {
			return
		}
	}
	for _, name := range unityRegenerable {
		for _, candidate := range []string{name, strings.ToLower(name)} {
			if _, ok := state.HasDirectory(candidate); ok {
				state.AddMatch(candidate, "Assets, Packages, and ProjectSettings were found alongside this directory.")
			}
		}
	}
}
