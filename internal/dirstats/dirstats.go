// Package dirstats aggregates recursive size and modification-time
// information for paths a scan has already matched, using a worker pool
// sized well below the directory walker's own so the two can run
// concurrently without starving each other for I/O.
package dirstats

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/nrjones-dev/dirsweep/internal/progress"
)

// DirStats is the recursive size and latest modification time under one
// path. Either field may be unset (Size == nil, LastMod the zero Time) when
// the path contained no readable regular file.
type DirStats struct {
	Size    *uint64
	LastMod time.Time
}

// Less orders DirStats so a descending sort surfaces the biggest, stalest
// subtree first: larger size wins outright; equal size breaks the tie in
// favor of the earlier (staler) modification time.
func (d DirStats) Less(o DirStats) bool {
	ds, dok := d.Size, d.Size != nil
	os_, ook := o.Size, o.Size != nil
	switch {
	case dok && ook && *ds != *os_:
		return *ds > *os_
	case dok != ook:
		return dok
	case d.LastMod.Equal(o.LastMod):
		return false
	default:
		return d.LastMod.Before(o.LastMod)
	}
}

// Add combines two DirStats: sizes sum (nil behaves as the identity: a
// nil+nil stays nil, a nil+x is just x), and the later modification time
// wins.
func (d DirStats) Add(o DirStats) DirStats {
	var sum *uint64
	switch {
	case d.Size != nil && o.Size != nil:
		v := *d.Size + *o.Size
		sum = &v
	case d.Size != nil:
		v := *d.Size
		sum = &v
	case o.Size != nil:
		v := *o.Size
		sum = &v
	}
	latest := d.LastMod
	if o.LastMod.After(latest) {
		latest = o.LastMod
	}
	return DirStats{Size: sum, LastMod: latest}
}

// LastModDays reports whole days elapsed since LastMod, and false if no
// file under the path was ever successfully stat'd.
func (d DirStats) LastModDays() (int64, bool) {
	if d.LastMod.IsZero() {
		return 0, false
	}
	return int64(time.Since(d.LastMod).Hours() / 24), true
}

// Request pairs a caller-chosen index with the path to aggregate; Result
// carries the index back so the caller can match a response to the
// request it started without relying on delivery order.
type Request struct {
	Index int
	Path  string
}

type Result struct {
	Index int
	Stats DirStats
	Err   error
}

// Compute runs a worker pool of size max(1, workers) (or
// max(1, runtime.NumCPU()/2) when workers is 0 or less) over requests, serially walking each path within its worker and writing
// one Result per request to results before closing it. Requests assigned
// to the same worker are processed in order; across workers, completion
// order is unspecified. When showProgress is true, a determinate bar
// (total = len(requests)) advances by one as each request completes,
// unlike the scanner's open-ended spinner.
func Compute(requests []Request, workers int, showProgress bool, results chan<- Result) {
	if workers <= 0 {
		workers = max(1, runtime.NumCPU()/2)
	}
	if workers > len(requests) {
		workers = len(requests)
	}
	if workers < 1 {
		workers = 1
	}

	bar := progress.New(showProgress, int64(len(requests)))
	bar.Describe(progressLabel("Computing directory sizes"))

	jobs := make(chan Request)
	done := make(chan struct{})
	for range workers {
		go func() {
			for req := range jobs {
				stats, err := walkOne(req.Path)
				results <- Result{Index: req.Index, Stats: stats, Err: err}
				bar.Add(1)
			}
			done <- struct{}{}
		}()
	}

	go func() {
		for _, r := range requests {
			jobs <- r
		}
		close(jobs)
	}()

	for range workers {
		<-done
	}
	close(results)
	bar.Finish(progressLabel(fmt.Sprintf("Computed sizes for %d matches", len(requests))))
}

// progressLabel adapts a plain string to the fmt.Stringer progress.Bar
// expects for Describe/Finish.
type progressLabel string

func (p progressLabel) String() string { return string(p) }

type fileKey struct {
	dev, ino uint64
}

// walkOne recursively sums regular-file sizes and tracks the latest
// modification time under root, without following symlinks, skipping any
// hard link whose (device, inode) pair it has already counted.
func walkOne(root string) (DirStats, error) {
	var (
		total DirStats
		seen  = make(map[fileKey]struct{})
	)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // best-effort: skip unreadable entries, keep walking
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if key, ok := identity(info); ok {
			if _, dup := seen[key]; dup {
				return nil
			}
			seen[key] = struct{}{}
		}

		size := uint64(info.Size())
		total = total.Add(DirStats{Size: &size, LastMod: info.ModTime()})
		return nil
	})
	return total, err
}
