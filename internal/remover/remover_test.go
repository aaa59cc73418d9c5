package remover

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRemoveDeletesFilesAndDirectoriesRecursively(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "loose.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(root, "tree")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nested", "leaf.txt"), []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}

	results := make(chan Result, 2)
	Remove([]string{file, dir}, 2, false, results)

	byPath := map[string]error{}
	for r := range results {
		byPath[r.Path] = r.Err
	}
	if err, ok := byPath[file]; !ok || err != nil {
		t.Errorf("file result = %v, want success", err)
	}
	if err, ok := byPath[dir]; !ok || err != nil {
		t.Errorf("dir result = %v, want success", err)
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Error("expected file to be gone")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("expected directory to be gone")
	}
}

func TestRemoveReportsPerPathErrorsWithoutAbortingOthers(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "exists.txt")
	if err := os.WriteFile(good, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(root, "does-not-exist")

	results := make(chan Result, 2)
	Remove([]string{missing, good}, 2, false, results)

	byPath := map[string]error{}
	for r := range results {
		byPath[r.Path] = r.Err
	}
	if byPath[missing] == nil {
		t.Error("expected an error for the missing path")
	}
	if err, ok := byPath[good]; !ok || err != nil {
		t.Errorf("good path result = %v, want success despite the other failure", err)
	}
}

func TestRemoveWithProgressEnabledStillDeletesEverything(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "loose.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	results := make(chan Result, 1)
	Remove([]string{file}, 1, true, results)

	r := <-results
	if r.Err != nil {
		t.Errorf("unexpected error with progress enabled: %v", r.Err)
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Error("expected file to be gone")
	}
}
