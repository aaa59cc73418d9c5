package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nrjones-dev/dirsweep/internal/dirstats"
	"github.com/nrjones-dev/dirsweep/internal/heuristics"
	"github.com/nrjones-dev/dirsweep/internal/match"
	"github.com/nrjones-dev/dirsweep/internal/remover"
	"github.com/nrjones-dev/dirsweep/internal/scanner"
)

// scanOptions holds the CLI flags bound by newRootCmd.
//
// noUI exists for parity with the interactive view named in the interface
// contract; this build has no TUI, so it is accepted but has no effect —
// every run already prints to stdout.
type scanOptions struct {
	path      string
	noUI      bool
	yes       bool
	dangerous bool
	noIcons   bool
	workers   int
}

// runScan drives one scan end to end: walk the tree, print every match with
// its aggregated size, prompt for deletion unless -y was given, then delete.
func runScan(cmd *cobra.Command, opts *scanOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	errs := make(chan error, 64)
	go drainScanErrors(cmd.ErrOrStderr(), errs)
	defer close(errs)

	sc := scanner.New(opts.path, heuristics.Default(), opts.dangerous, opts.workers, true, errs)
	out, _, done := sc.Results(ctx)

	var matches []match.Data
	for m := range out {
		matches = append(matches, m)
	}
	if err := <-done; err != nil {
		return fmt.Errorf("scan %s: %w", opts.path, err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing found to delete.")
		return nil
	}

	sorted := match.NewSorted(matches, func(m match.Data) string { return m.Path })
	stats := computeStats(sorted.Items(), true)

	renderer := newRenderer(cmd.OutOrStdout(), opts.noIcons)
	renderer.printTable(sorted.Items(), stats)

	if !opts.yes {
		ok, err := confirmDeletion(cmd.InOrStdin(), cmd.OutOrStdout(), len(sorted.Items()))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	return deleteMatches(cmd.OutOrStdout(), sorted.Items(), true)
}

// drainScanErrors prints the scanner's non-fatal diagnostics as they
// arrive, matching §7's "Failed to read <path> (<err>)" user-visible form.
// Directory-read errors carry an *fs.PathError, which supplies the path and
// the underlying error; any other diagnostic (such as heuristic misuse) is
// printed whole after "Failed to read:".
func drainScanErrors(w io.Writer, errs <-chan error) {
	for err := range errs {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			fmt.Fprintf(w, "Failed to read %s (%v)\n", pathErr.Path, pathErr.Err)
			continue
		}
		fmt.Fprintf(w, "Failed to read: %v\n", err)
	}
}

// computeStats runs the DirStats aggregator over every match's path and
// returns the results indexed the same way as matches.
func computeStats(matches []match.Data, showProgress bool) []dirstats.DirStats {
	requests := make([]dirstats.Request, len(matches))
	for i, m := range matches {
		requests[i] = dirstats.Request{Index: i, Path: m.Path}
	}

	results := make(chan dirstats.Result, len(requests))
	go dirstats.Compute(requests, 0, showProgress, results)

	out := make([]dirstats.DirStats, len(matches))
	for res := range results {
		if res.Err == nil {
			out[res.Index] = res.Stats
		}
	}
	return out
}

// confirmDeletion prints the spec-mandated prompt and reads a y/n answer.
func confirmDeletion(r io.Reader, w io.Writer, n int) (bool, error) {
	fmt.Fprintf(w, "Do you want to permanently delete the %d directories/files listed above? [y/N] ", n)

	s := bufio.NewScanner(r)
	if !s.Scan() {
		return false, s.Err()
	}
	answer := strings.ToLower(strings.TrimSpace(s.Text()))
	return answer == "y" || answer == "yes", nil
}

// deleteMatches runs the bulk remover over every matched path and prints
// one line per failure, matching the contract in §7.
func deleteMatches(w io.Writer, matches []match.Data, showProgress bool) error {
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = m.Path
	}

	results := make(chan remover.Result, len(paths))
	go remover.Remove(paths, 0, showProgress, results)

	var failed int
	for res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(w, "Failed to delete %s (%v)\n", res.Path, res.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d deletions failed", failed, len(paths))
	}
	return nil
}
