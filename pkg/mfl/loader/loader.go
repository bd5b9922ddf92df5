package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"mercator-hq/loom/pkg/mfl"
	"mercator-hq/loom/pkg/mfl/ast"
)

// Result is the outcome of loading one flow definition file. Exactly one of
// Documents or Err is set.
type Result struct {
	Path      string
	Documents []*ast.Document
	Err       error
}

// Load parses the flow definitions at path, which may be a single file or a
// directory of .yaml/.yml files. Loading continues past per-file parse
// errors; each file's outcome is reported in its Result. The returned error
// covers discovery problems only (missing path, empty directory).
func Load(path string) ([]Result, error) {
	files, err := discover(path)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(files))
	for _, file := range files {
		docs, err := mfl.ParseFile(file)
		results = append(results, Result{Path: file, Documents: docs, Err: err})
	}
	return results, nil
}

// discover resolves path into the list of definition files to load.
func discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access %q: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(path, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to list definition files: %w", err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no flow definition files found in %q", path)
	}
	sort.Strings(files)
	return files, nil
}
