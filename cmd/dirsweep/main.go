package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &scanOptions{
		path:    ".",
		workers: 0,
	}

	cmd := &cobra.Command{
		Use:     "dirsweep",
		Short:   "Find directories and files safe to delete from a workstation",
		Version: version + " (" + commit + ")",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.path, "path", "p", opts.path, "Directory to scan")
	cmd.Flags().BoolVar(&opts.noUI, "no-ui", false, "Print matches to stdout instead of opening the interactive view")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Delete matched paths without prompting for confirmation")
	cmd.Flags().BoolVar(&opts.dangerous, "dangerous", false, "Descend into OS-owned paths instead of protecting them (matches found there are marked dangerous)")
	cmd.Flags().BoolVar(&opts.noIcons, "no-icons", false, "Use each heuristic's short abbreviation instead of its icon")

	return cmd
}
