package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/nrjones-dev/dirsweep/internal/heuristic"
	"github.com/nrjones-dev/dirsweep/internal/heuristics"
	"github.com/nrjones-dev/dirsweep/internal/match"
)

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func collect(t *testing.T, root string, registry heuristic.Registry, dangerous bool) ([]match.Data, *Stats) {
	t.Helper()
	s := New(root, registry, dangerous, 4, false, nil)
	out, stats, done := s.Results(context.Background())

	var got []match.Data
	for d := range out {
		got = append(got, d)
	}
	if err := <-done; err != nil {
		t.Fatalf("scan finished with error: %v", err)
	}
	return got, stats
}

func paths(matches []match.Data) map[string]bool {
	m := make(map[string]bool, len(matches))
	for _, d := range matches {
		m[d.Path] = true
	}
	return m
}

func TestScannerEmitsRustTargetAndSuppressesDescent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\n")
	writeFile(t, filepath.Join(root, "target", "debug", "bin"), "elf")

	matches, stats := collect(t, root, heuristics.Default(), false)
	got := paths(matches)
	if !got[filepath.Join(root, "target")] {
		t.Errorf("expected target to be matched, got %v", got)
	}
	if got[filepath.Join(root, "target", "debug")] {
		t.Error("expected no descent into an emitted match; target/debug should never have been visited")
	}
	if stats.MatchesEmitted.Load() != 1 {
		t.Errorf("MatchesEmitted = %d, want 1", stats.MatchesEmitted.Load())
	}
}

func TestScannerFindsNestedProjectsIndependently(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\n")
	mkdirAll(t, filepath.Join(root, "target"))
	mkdirAll(t, filepath.Join(root, "sub", "node_modules"))

	matches, _ := collect(t, root, heuristics.Default(), false)
	got := paths(matches)
	if !got[filepath.Join(root, "target")] {
		t.Errorf("expected rust target match, got %v", got)
	}
	if !got[filepath.Join(root, "sub", "node_modules")] {
		t.Errorf("expected nested node_modules match, got %v", got)
	}
}

func TestScannerProtectsSystemPathsWithoutDangerous(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skipf("no dangerous-path fixture for GOOS=%s", runtime.GOOS)
	}
	root := t.TempDir()
	mkdirAll(t, filepath.Join(root, "opt", "1", "status"))

	matches, _ := collect(t, root, heuristics.Default(), false)
	got := paths(matches)
	if got[filepath.Join(root, "opt")] {
		t.Error("a protected system path should never be emitted as a match")
	}
	if got[filepath.Join(root, "opt", "1")] {
		t.Error("descent into a protected system path should have been suppressed")
	}
}

func TestScannerStopsPromptlyWhenContextCancelled(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 50; i++ {
		mkdirAll(t, filepath.Join(root, "d", fmt.Sprintf("n%d", i), "e", "f"))
	}

	s := New(root, heuristics.Default(), false, 2, false, nil)
	ctx, cancel := context.WithCancel(context.Background())
	out, _, done := s.Results(ctx)
	cancel()

	select {
	case <-out:
	case <-time.After(5 * time.Second):
	}
	for range out {
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scan did not terminate after context cancellation")
	}
}

func TestScannerWithProgressReportsEveryDirectoryVisited(t *testing.T) {
	root := t.TempDir()
	mkdirAll(t, filepath.Join(root, "a"))
	mkdirAll(t, filepath.Join(root, "b"))

	s := New(root, nil, false, 2, false, nil)
	progressCh := make(chan ProgressEvent, 16)
	s.WithProgress(progressCh)

	out, _, done := s.Results(context.Background())
	var seen []string
	var drainWg sync.WaitGroup
	drainWg.Add(1)
	go func() {
		defer drainWg.Done()
		for ev := range progressCh {
			if ev.Err != nil {
				t.Errorf("unexpected progress error for %s: %v", ev.Path, ev.Err)
			}
			seen = append(seen, ev.Path)
		}
	}()

	for range out {
	}
	if err := <-done; err != nil {
		t.Fatalf("scan finished with error: %v", err)
	}
	drainWg.Wait()

	want := map[string]bool{root: true, filepath.Join(root, "a"): true, filepath.Join(root, "b"): true}
	if len(seen) != len(want) {
		t.Fatalf("visited %v, want exactly %v", seen, want)
	}
	for _, p := range seen {
		if !want[p] {
			t.Errorf("unexpected directory reported as visited: %s", p)
		}
	}
}

func TestScannerWithProgressReportsUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits don't restrict readdir on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permission bits")
	}
	root := t.TempDir()
	blocked := filepath.Join(root, "blocked")
	mkdirAll(t, blocked)
	if err := os.Chmod(blocked, 0o000); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(blocked, 0o755)

	s := New(root, nil, false, 2, false, nil)
	progressCh := make(chan ProgressEvent, 16)
	s.WithProgress(progressCh)

	out, _, done := s.Results(context.Background())
	var sawErr bool
	var drainWg sync.WaitGroup
	drainWg.Add(1)
	go func() {
		defer drainWg.Done()
		for ev := range progressCh {
			if ev.Path == blocked && ev.Err != nil {
				sawErr = true
			}
		}
	}()

	for range out {
	}
	<-done
	drainWg.Wait()

	if !sawErr {
		t.Error("expected a progress event reporting the unreadable directory")
	}
}
