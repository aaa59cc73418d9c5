package heuristics

import (
	"os"
	"path/filepath"

	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var venvLang = &lang.Lang{Name: "venv", Short: "venv", Color: lang.NewColor(222)}

// venvNames are the two conventional directory names Python's venv module
// and virtualenv create.
var venvNames = []string{"venv", "env"}

// Venv flags a venv/env subdirectory as a recreatable Python virtual
// environment once it directly contains venv/virtualenv's own pyvenv.cfg
// marker. The marker lives one level below the directory being scanned, so
// this heuristic (like CMake) stats a single file inside a named child
// rather than a marker in the current directory.
type Venv struct{}

func (Venv) Info() *lang.Lang { return venvLang }

func (Venv) CheckForMatches(state *scanstate.MatchingState) {
	for _, name := range venvNames {
		dir, ok := state.HasDirectory(name)
		if !ok {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, "pyvenv.cfg")); err == nil {
			state.AddMatch(name, "pyvenv.cfg was found directly inside this directory.")
		}
	}
}
