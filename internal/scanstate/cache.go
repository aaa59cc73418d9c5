// Package scanstate holds the two objects that mediate between the walk
// driver and a heuristic: the per-branch ScannerCache and the per-directory
// MatchingState built from it.
package scanstate

import "github.com/nrjones-dev/dirsweep/internal/match"

// ScannerCache is the state propagated down one branch of the walk. It is
// cloned, never shared, as the walk forks into subdirectories, so sibling
// branches never observe each other's additions.
type ScannerCache struct {
	// InheritedFiles maps a heuristic's stable registry index to the ordered
	// paths it has observed in this branch's ancestors. Keying by index
	// avoids any runtime type-identity mechanism.
	InheritedFiles map[int][]string
	// Dangerous is true once an ancestor directory was marked system-owned.
	// Monotonic: never cleared on descent.
	Dangerous bool
	// MarkedToBeDangerous holds basenames of direct children that must latch
	// Dangerous=true the next time they are entered as a directory.
	MarkedToBeDangerous map[string]struct{}
	// Sender is the shared channel matches are emitted on. Not cloned:
	// every branch's cache points at the same underlying channel.
	Sender chan<- match.Data
	// Done is closed when the consumer has gone away; a pending send
	// selects on it to fail fast instead of blocking forever.
	Done <-chan struct{}
}

// NewScannerCache creates the root cache for a scan.
func NewScannerCache(sender chan<- match.Data, done <-chan struct{}) *ScannerCache {
	return &ScannerCache{
		InheritedFiles:      make(map[int][]string),
		MarkedToBeDangerous: make(map[string]struct{}),
		Sender:              sender,
		Done:                done,
	}
}

// Clone returns an independent copy of the cache for a child branch.
// InheritedFiles is deep-copied per heuristic bucket so later appends on one
// branch never retroactively appear on a sibling. MarkedToBeDangerous is
// copied too: this directory's heuristics populated it for the specific
// child being entered, and EnterChild on the clone is what consumes and
// clears it.
func (c *ScannerCache) Clone() *ScannerCache {
	inherited := make(map[int][]string, len(c.InheritedFiles))
	for id, paths := range c.InheritedFiles {
		cp := make([]string, len(paths))
		copy(cp, paths)
		inherited[id] = cp
	}
	marked := make(map[string]struct{}, len(c.MarkedToBeDangerous))
	for name := range c.MarkedToBeDangerous {
		marked[name] = struct{}{}
	}
	return &ScannerCache{
		InheritedFiles:      inherited,
		Dangerous:           c.Dangerous,
		MarkedToBeDangerous: marked,
		Sender:              c.Sender,
		Done:                c.Done,
	}
}

// EnterChild implements the two-phase dangerous latch: called once, at the
// moment the walker commits to visiting the child named basename. If an
// ancestor's heuristic marked basename dangerous, Dangerous latches true for
// this whole branch and the (now irrelevant, branch-local) mark set is
// cleared.
func (c *ScannerCache) EnterChild(basename string) {
	if _, ok := c.MarkedToBeDangerous[basename]; ok {
		c.Dangerous = true
		c.MarkedToBeDangerous = make(map[string]struct{})
	}
}

// MarkDangerous records that basename's subtree should latch Dangerous the
// next time it is entered.
func (c *ScannerCache) MarkDangerous(basename string) {
	c.MarkedToBeDangerous[basename] = struct{}{}
}
