// Package heuristics bundles the concrete pattern rules a scan runs at every
// directory, and the default order a Scanner runs them in.
package heuristics

import "github.com/nrjones-dev/dirsweep/internal/heuristic"

// Default returns the heuristics in their mandated order. Hidden runs first
// so its flag is already set on a child by the time any other heuristic
// matches it; System runs next so a system-owned subtree is protected
// before any language heuristic gets a chance to descend into it; Git runs
// last so its gitignore verdicts add onto, rather than race, every language
// heuristic's positive matches.
func Default() heuristic.Registry {
	return heuristic.Registry{
		Hidden{},
		System{},
		Rust{},
		Unity{},
		JavaScript{},
		Python{},
		Venv{},
		Direnv{},
		Flutter{},
		CMake{},
		Gradle{},
		Git{},
	}
}
