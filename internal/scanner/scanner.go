// Package scanner drives the parallel directory walk: one goroutine per
// directory, bounded by a semaphore, running the heuristic registry at
// each stop and streaming whatever it decides to emit to the caller.
//
// # Concurrency model
//
// Every walk goroutine writes its directory's matches to a shared internal
// channel through its branch's ScannerCache.Sender; a single relay
// goroutine drains that channel, updates the match counter, and forwards
// each match to the caller's channel. This keeps the counting in one
// place instead of threading an atomic increment through every heuristic
// call site. A semaphore bounds how many directories are being read at
// once; a WaitGroup tracks in-flight walk goroutines so Scan knows when to
// close the internal channel; a context cancellation (surfaced to the
// engine's match send as ScannerCache.Done) lets a gone-away consumer stop the walk
// early instead of deadlocking every goroutine against a full channel.
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nrjones-dev/dirsweep/internal/heuristic"
	"github.com/nrjones-dev/dirsweep/internal/match"
	"github.com/nrjones-dev/dirsweep/internal/progress"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

// Scanner walks one directory tree, running heuristics at every stop.
//
// Scanner is single-use: build with New, call Scan or Results once.
type Scanner struct {
	root         string
	heuristics   heuristic.Registry
	dangerous    bool
	workers      int
	showProgress bool
	errCh        chan<- error

	sem     chan struct{}
	wg      sync.WaitGroup
	bar     *progress.Bar
	errOnce sync.Once
	scanErr error

	progressCh chan<- ProgressEvent
}

// ProgressEvent reports one directory the walk finished visiting, or the
// I/O error encountered trying to read it, for a consumer that wants the
// per-directory iterator named in the external interface (as opposed to
// the match stream, which only reports positively-weighted results).
type ProgressEvent struct {
	Path string
	Err  error
}

// WithProgress arranges for Scan/Results to also emit a ProgressEvent for
// every directory the walk visits, successful or not, and to close ch when
// the walk finishes. Must be called before Scan; the caller should drain ch
// concurrently with the match channel, since a full, undrained channel
// stalls the walker goroutine trying to send to it.
func (s *Scanner) WithProgress(ch chan<- ProgressEvent) *Scanner {
	s.progressCh = ch
	return s
}

// New builds a Scanner rooted at root. workers bounds how many directories
// may be read concurrently (runtime.NumCPU() when below 1); dangerous, when
// true, lets the walk descend into subtrees a heuristic flagged as
// system-owned instead of protecting them. errCh (optional) receives
// non-fatal diagnostics (unreadable directories, heuristic misuse) without
// interrupting the walk.
func New(root string, heuristics heuristic.Registry, dangerous bool, workers int, showProgress bool, errCh chan<- error) *Scanner {
	if workers < 1 {
		workers = max(1, runtime.NumCPU())
	}
	return &Scanner{
		root:         root,
		heuristics:   heuristics,
		dangerous:    dangerous,
		workers:      workers,
		showProgress: showProgress,
		errCh:        errCh,
	}
}

// Stats tracks walk progress using atomic counters so any walk goroutine
// can update them without a lock, and a consumer can read a snapshot at
// any time, including mid-scan.
type Stats struct {
	DirsScanned    atomic.Int64
	MatchesEmitted atomic.Int64
	StartTime      time.Time
}

func (s *Stats) String() string {
	return fmt.Sprintf("Scanned %d directories, emitted %d matches in %.1fs",
		s.DirsScanned.Load(), s.MatchesEmitted.Load(), time.Since(s.StartTime).Seconds())
}

// Scan walks the tree synchronously, sending every positively-weighted
// match on out, then closes out and returns. It blocks until the walk
// completes, the context is cancelled, or the root itself can't be read.
func (s *Scanner) Scan(ctx context.Context, out chan<- match.Data, stats *Stats) error {
	stats.StartTime = time.Now()
	s.bar = progress.New(s.showProgress, -1)
	s.bar.Describe(stats)
	s.sem = make(chan struct{}, s.workers)

	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		close(out)
		if s.progressCh != nil {
			close(s.progressCh)
		}
		return err
	}

	internal := make(chan match.Data, 256)
	var relayWg sync.WaitGroup
	relayWg.Add(1)
	go func() {
		defer relayWg.Done()
		for data := range internal {
			select {
			case out <- data:
				stats.MatchesEmitted.Add(1)
			case <-ctx.Done():
			}
		}
	}()

	cache := scanstate.NewScannerCache(internal, ctx.Done())

	s.wg.Add(1)
	go s.walk(ctx, absRoot, cache, stats)
	s.wg.Wait()

	close(internal)
	relayWg.Wait()

	close(out)
	if s.progressCh != nil {
		close(s.progressCh)
	}
	s.bar.Finish(stats)
	return s.scanErr
}

// Results starts the scan in the background and returns a channel the
// caller can range over, a live stats snapshot, and a channel that
// receives the scan's terminal error (nil on a clean finish) exactly once
// before closing.
func (s *Scanner) Results(ctx context.Context) (<-chan match.Data, *Stats, <-chan error) {
	out := make(chan match.Data, 256)
	stats := &Stats{}
	done := make(chan error, 1)
	go func() {
		done <- s.Scan(ctx, out, stats)
		close(done)
	}()
	return out, stats, done
}

func (s *Scanner) walk(ctx context.Context, dir string, cache *scanstate.ScannerCache, stats *Stats) {
	defer s.wg.Done()

	select {
	case <-ctx.Done():
		return
	default:
	}

	s.sem <- struct{}{}
	entries, err := os.ReadDir(dir)
	<-s.sem
	if err != nil {
		wrapped := fmt.Errorf("scanner: reading %s: %w", dir, err)
		s.sendError(wrapped)
		s.sendProgress(ctx, ProgressEvent{Path: dir, Err: wrapped})
		return
	}
	s.sendProgress(ctx, ProgressEvent{Path: dir})

	children := make([]scanstate.ChildEntry, 0, len(entries))
	for _, e := range entries {
		children = append(children, scanstate.ChildEntry{Name: e.Name(), IsDir: e.IsDir()})
	}

	st := scanstate.New(dir, children, cache, s.errCh)
	for i, h := range s.heuristics {
		st.SetCurrentHeuristic(i, h.Info())
		h.CheckForMatches(st)
	}

	descend, err := st.ProcessCollectedData(s.dangerous)
	stats.DirsScanned.Add(1)
	s.bar.Describe(stats)

	if err != nil {
		s.recordTerminalError(err)
		return
	}

	for _, name := range descend {
		child := cache.Clone()
		child.EnterChild(name)
		s.wg.Add(1)
		go s.walk(ctx, filepath.Join(dir, name), child, stats)
	}
}

func (s *Scanner) recordTerminalError(err error) {
	s.errOnce.Do(func() { s.scanErr = err })
}

func (s *Scanner) sendError(err error) {
	if s.errCh != nil {
		s.errCh <- err
	}
}

// sendProgress delivers ev the same way state.go's match send does: a
// select against ctx.Done() so a walk goroutine never blocks forever on a
// consumer that attached WithProgress and then stopped draining it.
func (s *Scanner) sendProgress(ctx context.Context, ev ProgressEvent) {
	if s.progressCh == nil {
		return
	}
	select {
	case s.progressCh <- ev:
	case <-ctx.Done():
	}
}
