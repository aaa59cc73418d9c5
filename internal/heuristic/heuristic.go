// Package heuristic defines the small, stable contract a pattern rule
// implements, and the compile-time registry that orders them.
package heuristic

import (
	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

// Heuristic is the contract a rule implements against one directory's
// immediate children. Heuristics MUST NOT traverse the filesystem except to
// read small marker files; the walk itself is the engine's job. A
// heuristic is a stateless value: it has no thread identity, no locks, and
// no cross-directory memory outside MatchingState.InheritedFiles.
type Heuristic interface {
	// Info returns the heuristic's constant identity, used for display and
	// for keying inherited state.
	Info() *lang.Lang
	// CheckForMatches probes the current directory's children, recording any
	// matches through state.
	CheckForMatches(state *scanstate.MatchingState)
}

// Registry is the ordered, compile-time list of heuristics a Scanner runs.
// A heuristic's index in the slice is its stable identity: the integer key
// MatchingState uses for InheritedFiles, assigned once here instead of
// through any runtime type-reflection facility.
type Registry []Heuristic
