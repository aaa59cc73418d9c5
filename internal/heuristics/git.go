package heuristics

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/scanstate"
)

var gitLang = &lang.Lang{Name: "Git", Short: "git", Color: lang.NewColorPair(202, 166)}

// Weights a gitignore verdict contributes. NotMatched is mildly negative
// (the file wasn't mentioned either way — maybe the user wants it kept),
// Ignored is positive (it's ignored, so it's probably removable), and
// Whitelisted is strongly negative (the user explicitly carved it out).
const (
	gitWeightNotMatched  = -1000
	gitWeightIgnored     = 500
	gitWeightWhitelisted = -10000
)

// Git accumulates every .gitignore discovered along a branch, starting once
// a .git directory is seen, and classifies each sibling of every
// descendant directory against the accumulated ignore files: explicitly
// whitelisted, ignored, or untouched. Matches are grouped under the
// repository root rather than the directory they were found in. Git runs
// after the language heuristics so its verdicts add onto (rather than
// replace) their positive matches inside ignored trees.
type Git struct{}

func (Git) Info() *lang.Lang { return gitLang }

func (Git) CheckForMatches(state *scanstate.MatchingState) {
	files := state.InheritedFiles()

	if _, ok := state.HasDirectory(".git"); ok {
		groupRoot := state.Path()
		if len(files) == 0 {
			files = append(files, groupRoot)
		} else {
			files[0] = groupRoot
		}
	} else if len(files) == 0 {
		return // no .git found yet on this branch
	}

	if gitignorePath, ok := state.HasFile(".gitignore"); ok {
		files = append(files, gitignorePath)
	} else if len(files) < 2 {
		state.SetInheritedFiles(files)
		return // no .gitignore found yet
	}
	state.SetInheritedFiles(files)

	root := files[0]
	gitignoreFiles := files[1:]
	for _, child := range state.GetAllContents() {
		name := filepath.Base(child.Path)
		weight, comment := classifyGitignore(gitignoreFiles, child.Path, child.IsDir)
		state.AddMatch(name, comment).Weight(weight).CustomGroup(root)
	}
}

// classifyGitignore walks the inherited .gitignore files from deepest
// (most recently discovered) to shallowest, returning the first file's
// verdict that applies to path; a file with no opinion defers to its
// ancestor.
func classifyGitignore(gitignoreFiles []string, path string, isDir bool) (weight int, comment string) {
	for i := len(gitignoreFiles) - 1; i >= 0; i-- {
		switch classifyOneGitignore(gitignoreFiles[i], path, isDir) {
		case gitVerdictIgnored:
			return gitWeightIgnored, "File was included in one of .gitignore files."
		case gitVerdictWhitelisted:
			return gitWeightWhitelisted, "File was explicitly whitelisted in one of .gitignore files."
		}
	}
	return gitWeightNotMatched, "File was not included in any .gitignore files that were found."
}

type gitVerdict int

const (
	gitVerdictNone gitVerdict = iota
	gitVerdictIgnored
	gitVerdictWhitelisted
)

func classifyOneGitignore(gitignorePath, path string, isDir bool) gitVerdict {
	data, err := os.ReadFile(gitignorePath)
	if err != nil {
		return gitVerdictNone
	}
	lines := strings.Split(string(data), "\n")

	rel, err := filepath.Rel(filepath.Dir(gitignorePath), path)
	if err != nil {
		return gitVerdictNone
	}
	rel = filepath.ToSlash(rel)
	if isDir {
		rel += "/"
	}

	if gitignore.CompileIgnoreLines(lines...).MatchesPath(rel) {
		return gitVerdictIgnored
	}

	var negations []string
	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if strings.HasPrefix(trimmed, "!") {
			negations = append(negations, strings.TrimPrefix(trimmed, "!"))
		}
	}
	if len(negations) > 0 && gitignore.CompileIgnoreLines(negations...).MatchesPath(rel) {
		return gitVerdictWhitelisted
	}
	return gitVerdictNone
}
