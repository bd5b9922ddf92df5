package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"mercator-hq/loom/pkg/mfl/ast"
	mflErrors "mercator-hq/loom/pkg/mfl/errors"
	"mercator-hq/loom/pkg/mfl/loader"
)

var lintFlags struct {
	file   string
	dir    string
	format string
	watch  bool
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate flow definition files",
	Long: `Validate MFL flow definition files for syntax and structural errors.

The lint command parses each definition into its AST and reports every
failure with the breadcrumb path and source position of the offending
construct.

Examples:
  # Lint single file
  loom lint --file process.yaml

  # Lint directory
  loom lint --dir flows/

  # JSON output for CI/CD
  loom lint --file process.yaml --format json

  # Re-validate on every change
  loom lint --dir flows/ --watch`,
	RunE: lintDefinitions,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "flow definition file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of flow definition files")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
	lintCmd.Flags().BoolVar(&lintFlags.watch, "watch", false, "watch for changes and re-validate")
}

// LintResult represents the lint outcome for a single definition file.
type LintResult struct {
	File      string      `json:"file"`
	Valid     bool        `json:"valid"`
	Documents int         `json:"documents"`
	Flows     int         `json:"flows"`
	Steps     int         `json:"steps"`
	Errors    []LintError `json:"errors,omitempty"`
}

// LintError represents a single parse error.
type LintError struct {
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

func lintDefinitions(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}
	if lintFlags.file != "" && lintFlags.dir != "" {
		return fmt.Errorf("--file and --dir are mutually exclusive")
	}

	path := lintFlags.file
	if path == "" {
		path = lintFlags.dir
	}

	loaded, err := loader.Load(path)
	if err != nil {
		return err
	}
	failed, err := report(loaded)
	if err != nil {
		return err
	}

	if lintFlags.watch {
		return watchAndRelint(path)
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed validation", failed)
	}
	return nil
}

// watchAndRelint re-runs the lint report after each debounced change burst,
// until interrupted.
func watchAndRelint(path string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := loader.NewWatcher(&loader.WatcherConfig{
		Path:             path,
		DebounceInterval: loader.DefaultWatcherConfig().DebounceInterval,
		Extensions:       loader.DefaultWatcherConfig().Extensions,
		SkipHidden:       true,
	}, nil)
	if err != nil {
		return err
	}

	return w.Watch(ctx, func(results []loader.Result) {
		if _, err := report(results); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
}

// report renders loader results and returns how many files failed.
func report(loaded []loader.Result) (int, error) {
	results := make([]LintResult, 0, len(loaded))
	failed := 0
	for _, l := range loaded {
		r := lintResult(l)
		if !r.Valid {
			failed++
		}
		results = append(results, r)
	}

	if lintFlags.format == "json" {
		return failed, outputJSON(results)
	}
	return failed, outputText(results)
}

func lintResult(l loader.Result) LintResult {
	result := LintResult{File: l.Path, Valid: l.Err == nil}

	if l.Err != nil {
		le := LintError{Message: l.Err.Error(), Kind: "error"}
		if pe, ok := l.Err.(*mflErrors.ParseError); ok {
			le.Message = pe.Message
			le.Kind = string(pe.Kind)
			if pe.Location != nil {
				le.Line = pe.Location.Line
				le.Column = pe.Location.Column
				le.Path = pe.Location.String()
			}
		}
		result.Errors = append(result.Errors, le)
		return result
	}

	result.Documents = len(l.Documents)
	census := &stepCensus{}
	for _, doc := range l.Documents {
		// Walk cannot fail with this visitor
		_ = ast.Walk(doc, census)
	}
	result.Flows = census.flows
	result.Steps = census.steps
	return result
}

// stepCensus counts flows and steps (including nested ones) via ast.Walk.
type stepCensus struct {
	flows int
	steps int
}

func (s *stepCensus) VisitDocument(*ast.Document) error { return nil }
func (s *stepCensus) VisitFlow(*ast.Flow) error         { s.flows++; return nil }
func (s *stepCensus) VisitStep(*ast.Step) error         { s.steps++; return nil }
func (s *stepCensus) VisitForm(*ast.Form) error         { return nil }

func outputJSON(results []LintResult) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func outputText(results []LintResult) error {
	for _, r := range results {
		if r.Valid {
			fmt.Printf("OK   %s (%d document(s), %d flow(s), %d step(s))\n",
				r.File, r.Documents, r.Flows, r.Steps)
			continue
		}
		fmt.Printf("FAIL %s\n", r.File)
		for _, e := range r.Errors {
			if e.Path != "" {
				fmt.Printf("  [%s] %s\n    --> %s\n", e.Kind, e.Message, e.Path)
			} else {
				fmt.Printf("  [%s] %s\n", e.Kind, e.Message)
			}
		}
	}
	return nil
}
