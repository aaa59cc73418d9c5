package heuristics

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var cmakeLang = &lang.Lang{Name: "CMake", Short: "cmake", Color: lang.NewColor(34)}

var buildDirRe = regexp.MustCompile(`^build.*$`)

// CMake flags an out-of-source build directory: any child whose name
// starts with "build" and that itself directly contains CMakeCache.txt,
// the marker CMake writes into the build tree it configures.
type CMake struct{}

func (CMake) Info() *lang.Lang { return cmakeLang }

func (CMake) CheckForMatches(state *scanstate.MatchingState) {
	for _, dir := range state.MatchDirectory(buildDirRe) {
		if _, err := os.Stat(filepath.Join(dir, "CMakeCache.txt")); err == nil {
			state.AddMatch(filepath.Base(dir), "CMakeCache.txt was found directly inside this directory.")
		}
	}
}
