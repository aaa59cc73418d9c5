// Package match holds the per-match accumulator and the emitted record the
// scan engine builds it into. Everything here is pure data: no filesystem
// access, no heuristic logic.
package match

import "github.com/nrjones-dev/dirsweep/internal/lang"

// DefaultWeight is the weight a freshly constructed MatchParameters carries
// before any heuristic calls Weight to override it.
const DefaultWeight = 1000

// overrideKind distinguishes the three states of the GroupOverride lattice.
// The zero value is kindNone, so a zero-value GroupOverride is the additive
// identity.
type overrideKind int

const (
	kindNone overrideKind = iota
	kindPath
	kindConflict
)

// GroupOverride tracks whether a heuristic asked for a match to be grouped
// under a path other than the directory it was found in. It forms a small
// lattice under Add: None is the identity, equal overrides idempotent,
// unequal overrides collapse to Conflict, and Conflict absorbs everything.
type GroupOverride struct {
	kind overrideKind
	path string
}

// Conflict is the absorbing element of the GroupOverride lattice: once two
// heuristics disagree about a match's group, no further addition recovers
// a single path.
var Conflict = GroupOverride{kind: kindConflict}

// Override builds a GroupOverride pinning a match's group to path.
func Override(path string) GroupOverride {
	return GroupOverride{kind: kindPath, path: path}
}

// Path returns the overridden path, if any.
func (g GroupOverride) Path() (string, bool) {
	if g.kind == kindPath {
		return g.path, true
	}
	return "", false
}

// IsConflict reports whether two heuristics disagreed on the group.
func (g GroupOverride) IsConflict() bool { return g.kind == kindConflict }

// Add combines two overrides per the lattice laws: None+x=x,
// Override(p)+Override(p)=Override(p), Override(p)+Override(q)=Conflict for
// p≠q, and Conflict+x=Conflict.
func (g GroupOverride) Add(o GroupOverride) GroupOverride {
	switch {
	case g.kind == kindConflict || o.kind == kindConflict:
		return Conflict
	case g.kind == kindNone:
		return o
	case o.kind == kindNone:
		return g
	case g.path == o.path:
		return g
	default:
		return Conflict
	}
}

// MatchParameters is the per-match accumulator a heuristic builds through
// MatchingState.AddMatch and the handle it returns. Multiple heuristics (or
// one heuristic matching the same child twice) each contribute one of
// these; the engine sums them with Add before deciding whether to emit.
//
// The zero value is the additive identity: Weight 0, no languages, no
// override, not dangerous.
type MatchParameters struct {
	Weight        int
	Languages     []lang.CommentedLang
	GroupOverride GroupOverride
	Dangerous     bool
	// Hidden is a presentation hint only: the Hidden heuristic sets it on
	// every dotfile it sees, independent of weight. It never participates in
	// the emit/suppress decision, which looks at Weight alone.
	Hidden bool
}

// New builds the MatchParameters a fresh AddMatch call starts with: default
// weight, the single language that triggered it.
func New(reason lang.CommentedLang) MatchParameters {
	return MatchParameters{
		Weight:    DefaultWeight,
		Languages: []lang.CommentedLang{reason},
	}
}

// Add combines two MatchParameters: weights sum, language lists concatenate
// in argument order, overrides combine per the GroupOverride lattice, and
// dangerous/hidden are true if either side is.
func (p MatchParameters) Add(o MatchParameters) MatchParameters {
	languages := make([]lang.CommentedLang, 0, len(p.Languages)+len(o.Languages))
	languages = append(languages, p.Languages...)
	languages = append(languages, o.Languages...)
	return MatchParameters{
		Weight:        p.Weight + o.Weight,
		Languages:     languages,
		GroupOverride: p.GroupOverride.Add(o.GroupOverride),
		Dangerous:     p.Dangerous || o.Dangerous,
		Hidden:        p.Hidden || o.Hidden,
	}
}

// Sum folds a list of MatchParameters with Add, starting from the identity.
func Sum(params []MatchParameters) MatchParameters {
	var total MatchParameters
	for _, p := range params {
		total = total.Add(p)
	}
	return total
}

// ResolveGroup applies the "group defaults to the emitting directory,
// overridable by a heuristic" rule from the data model.
func ResolveGroup(dirPath string, override GroupOverride) string {
	if p, ok := override.Path(); ok {
		return p
	}
	return dirPath
}

// Data is the record emitted on the match channel once the engine decides a
// child's accumulated weight warrants surfacing it to the consumer.
type Data struct {
	Path      string
	Group     string
	Dangerous bool
	Params    MatchParameters
}

// Weight returns the final accumulated weight of the match.
func (d Data) Weight() int { return d.Params.Weight }

// Languages returns the reasons recorded for the match, in the order
// heuristics contributed them.
func (d Data) Languages() []lang.CommentedLang { return d.Params.Languages }

// Hidden reports whether any contributing heuristic flagged this match as a
// dotfile/dotdirectory, for consumer-side filtering.
func (d Data) Hidden() bool { return d.Params.Hidden }
