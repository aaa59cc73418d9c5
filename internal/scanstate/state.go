package scanstate

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/match"
)

// errSendBlocked is returned by ProcessCollectedData when the consumer has
// gone away; the walker treats it as terminal for the current callback.
var errSendBlocked = errors.New("scanstate: match channel receiver gone")

// ChildEntry is one successfully-stat'd immediate child of the directory a
// MatchingState was built for.
type ChildEntry struct {
	Name  string
	IsDir bool
}

// ChildInfo is the (path, is-directory) pair GetAllContents hands back.
type ChildInfo struct {
	Path  string
	IsDir bool
}

type childData struct {
	entry  ChildEntry
	params []*match.MatchParameters
}

// MatchingState is the per-directory façade a heuristic's CheckForMatches
// sees. It is exclusively owned by one callback invocation: heuristics run
// strictly in sequence against it, never concurrently.
type MatchingState struct {
	dirPath  string
	cache    *ScannerCache
	errCh    chan<- error
	contents map[string]*childData
	order    []string

	currentHeuristic int
	currentLang      *lang.Lang
}

// New builds a MatchingState over one directory's successfully-stat'd
// children. cache is this branch's ScannerCache; errCh (optional) receives
// recoverable heuristic-usage diagnostics.
func New(dirPath string, children []ChildEntry, cache *ScannerCache, errCh chan<- error) *MatchingState {
	contents := make(map[string]*childData, len(children))
	order := make([]string, 0, len(children))
	for _, c := range children {
		contents[c.Name] = &childData{entry: c}
		order = append(order, c.Name)
	}
	return &MatchingState{
		dirPath:  dirPath,
		cache:    cache,
		errCh:    errCh,
		contents: contents,
		order:    order,
	}
}

// SetCurrentHeuristic records which heuristic is about to run. id is its
// stable index in the registry, used to key InheritedFiles; info is its
// Lang, used to tag any matches it adds.
func (s *MatchingState) SetCurrentHeuristic(id int, info *lang.Lang) {
	s.currentHeuristic = id
	s.currentLang = info
}

// Path returns the directory being scanned.
func (s *MatchingState) Path() string { return s.dirPath }

// HasFile reports whether name exists in this directory as a regular file.
func (s *MatchingState) HasFile(name string) (string, bool) {
	cd, ok := s.contents[name]
	if !ok || cd.entry.IsDir {
		return "", false
	}
	return filepath.Join(s.dirPath, name), true
}

// HasDirectory reports whether name exists in this directory as a
// subdirectory.
func (s *MatchingState) HasDirectory(name string) (string, bool) {
	cd, ok := s.contents[name]
	if !ok || !cd.entry.IsDir {
		return "", false
	}
	return filepath.Join(s.dirPath, name), true
}

// MatchFile returns the paths of every regular file whose basename matches
// re.
func (s *MatchingState) MatchFile(re *regexp.Regexp) []string {
	return s.matchEntries(re, false)
}

// MatchDirectory returns the paths of every subdirectory whose basename
// matches re.
func (s *MatchingState) MatchDirectory(re *regexp.Regexp) []string {
	return s.matchEntries(re, true)
}

func (s *MatchingState) matchEntries(re *regexp.Regexp, dirs bool) []string {
	var out []string
	for _, name := range s.order {
		cd := s.contents[name]
		if cd.entry.IsDir == dirs && re.MatchString(name) {
			out = append(out, filepath.Join(s.dirPath, name))
		}
	}
	return out
}

// GetAllContents returns every immediate child, in a stable order.
func (s *MatchingState) GetAllContents() []ChildInfo {
	out := make([]ChildInfo, 0, len(s.order))
	for _, name := range s.order {
		cd := s.contents[name]
		out = append(out, ChildInfo{Path: filepath.Join(s.dirPath, name), IsDir: cd.entry.IsDir})
	}
	return out
}

// InheritedFiles returns the path bucket belonging to the currently-running
// heuristic. Heuristics that want to append should build on this slice and
// commit the result with SetInheritedFiles (plain append may reallocate).
func (s *MatchingState) InheritedFiles() []string {
	return s.cache.InheritedFiles[s.currentHeuristic]
}

// SetInheritedFiles commits an updated bucket for the currently-running
// heuristic.
func (s *MatchingState) SetInheritedFiles(files []string) {
	s.cache.InheritedFiles[s.currentHeuristic] = files
}

// MatchHandle is the mutable handle AddMatch returns, letting a heuristic
// chain adjustments onto the MatchParameters it just created.
type MatchHandle struct {
	params *match.MatchParameters
}

// Weight overrides the match's weight (default DefaultWeight).
func (h *MatchHandle) Weight(w int) *MatchHandle {
	if h == nil {
		return h
	}
	h.params.Weight = w
	return h
}

// CustomGroup overrides the directory this match should be presented under.
func (h *MatchHandle) CustomGroup(path string) *MatchHandle {
	if h == nil {
		return h
	}
	h.params.GroupOverride = match.Override(path)
	return h
}

// Dangerous flags the match as declaring its target a system-owned path.
func (h *MatchHandle) Dangerous() *MatchHandle {
	if h == nil {
		return h
	}
	h.params.Dangerous = true
	return h
}

// Hidden flags the match as a dotfile/dotdirectory, a presentation hint
// independent of weight.
func (h *MatchHandle) Hidden() *MatchHandle {
	if h == nil {
		return h
	}
	h.params.Hidden = true
	return h
}

// AddMatch records that the currently-running heuristic matched the child
// named name, for the stated reason. It returns a handle for further
// tuning; if name isn't a child of this directory, the engine logs a
// diagnostic, discards the attempt, and returns nil (chaining on a nil
// handle is a no-op, never a panic).
func (s *MatchingState) AddMatch(name, comment string) *MatchHandle {
	cd, ok := s.contents[name]
	if !ok {
		s.reportError(fmt.Errorf("heuristic %s: add_match: %q is not a child of %s", s.currentLang, name, s.dirPath))
		return nil
	}
	params := match.New(lang.CommentedLang{Lang: s.currentLang, Comment: comment})
	cd.params = append(cd.params, &params)
	return &MatchHandle{params: &params}
}

func (s *MatchingState) reportError(err error) {
	if s.errCh != nil {
		s.errCh <- err
	}
}

// ProcessCollectedData consolidates every child's accumulated
// MatchParameters into the emit/skip/dangerous decision table, sends
// emitted matches on the cache's Sender, and returns the basenames of
// directories the walker should still descend into.
//
// It is engine-private: only the walk driver calls it, once per directory,
// after every heuristic has run.
func (s *MatchingState) ProcessCollectedData(includeDangerous bool) (descend []string, err error) {
	for _, name := range s.order {
		cd := s.contents[name]

		if len(cd.params) == 0 {
			if cd.entry.IsDir {
				descend = append(descend, name)
			}
			continue
		}

		values := make([]match.MatchParameters, len(cd.params))
		for i, p := range cd.params {
			values[i] = *p
		}
		total := match.Sum(values)

		switch {
		case total.Weight >= 1:
			data := match.Data{
				Path:      filepath.Join(s.dirPath, name),
				Group:     match.ResolveGroup(s.dirPath, total.GroupOverride),
				Dangerous: s.cache.Dangerous,
				Params:    total,
			}
			select {
			case s.cache.Sender <- data:
			case <-s.cache.Done:
				return nil, errSendBlocked
			}
			// Descent is suppressed: an emitted match is never entered.

		case total.Weight == 0:
			if cd.entry.IsDir {
				descend = append(descend, name)
			}

		default: // total.Weight <= -1
			switch {
			case !total.Dangerous:
				// Benign exclusion: proceed as if no heuristic had an opinion.
				if cd.entry.IsDir {
					descend = append(descend, name)
				}
			case !includeDangerous:
				// Dangerous and the caller opted out: protect the subtree.
			case cd.entry.IsDir:
				s.cache.MarkDangerous(name)
				descend = append(descend, name)
			}
		}
	}
	return descend, nil
}
