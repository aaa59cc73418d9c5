// Package remover bulk-deletes a user-confirmed list of paths with a
// worker pool, reporting every per-path failure instead of aborting: the
// list has already been confirmed, so the only useful behavior is
// best-effort completion.
package remover

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nrjones-dev/dirsweep/internal/progress"
)

// Result reports the outcome of deleting one path. Err is nil on success.
type Result struct {
	Path string
	Err  error
}

// Remove deletes every path in paths using a worker pool sized
// max(1, runtime.NumCPU()) when workers is 0, writing one Result per path
// to results before closing it. Each path is stat'd first: directories are
// removed recursively, everything else is unlinked. A failure on one path
// never stops the others. When showProgress is true, a determinate bar
// (total = len(paths)) advances by one per deletion.
func Remove(paths []string, workers int, showProgress bool, results chan<- Result) {
	if workers <= 0 {
		workers = max(1, runtime.NumCPU())
	}
	if workers > len(paths) {
		workers = len(paths)
	}
	if workers < 1 {
		workers = 1
	}

	bar := progress.New(showProgress, int64(len(paths)))
	bar.Describe(removalLabel("Deleting"))

	jobs := make(chan string)
	done := make(chan struct{})
	for range workers {
		go func() {
			for path := range jobs {
				results <- Result{Path: path, Err: removeOne(path)}
				bar.Add(1)
			}
			done <- struct{}{}
		}()
	}

	go func() {
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
	}()

	for range workers {
		<-done
	}
	close(results)
	bar.Finish(removalLabel(fmt.Sprintf("Deleted %d paths", len(paths))))
}

// removalLabel adapts a plain string to the fmt.Stringer progress.Bar
// expects for Describe/Finish.
type removalLabel string

func (r removalLabel) String() string { return string(r) }

func removeOne(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}
