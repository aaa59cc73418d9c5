package heuristics

import (
	"runtime"

	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var systemLang = &lang.Lang{Name: "System", Short: "sys", Color: lang.NewColor(196)}

// systemWeight is deliberately negative: a system-owned child should never
// be emitted as a match on its own, only protected (or, with --dangerous,
// descended into at the caller's own risk).
const systemWeight = -1000

// dangerousChild is the single per-OS directory name a scan should never
// wander into uninvited; it is checked in every directory the walk visits.
var dangerousChild = map[string]string{
	"linux":   "opt",
	"darwin":  "Applications",
	"windows": "AppData",
}

// System marks the one OS-owned directory a scan must never treat as
// ordinary clutter. It runs early, right after Hidden, so every later
// heuristic's matches against a protected child are still suppressed by the
// engine's dangerous-branch rule.
type System struct{}

func (System) Info() *lang.Lang { return systemLang }

func (System) CheckForMatches(state *scanstate.MatchingState) {
	name, ok := dangerousChild[runtime.GOOS]
	if !ok {
		return
	}
	if _, ok := state.HasDirectory(name); ok {
		state.AddMatch(name, "Path is owned by the operating system.").Weight(systemWeight).Dangerous()
	}
}
