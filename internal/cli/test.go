package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/relcheck/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // suite filter (glob pattern)
}

// SuiteResult holds the result of a single suite execution.
type SuiteResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Suites []SuiteResult `json:"suites"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Total  int           `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <suites-dir>",
		Short: "Run conformance suites",
		Long: `Run relation conformance suites.

Each YAML suite names a relation and the properties, closures or load
error it is expected to have. When golden/<name>.golden exists next to a
suite, the full outcome must also match it byte for byte.

Exit codes:
  0 - All suites passed
  1 - One or more suites failed
  2 - Command error (invalid paths, etc.)

Examples:
  relcheck test ./suites
  relcheck test ./suites --filter "chain*"
  relcheck test ./suites --update
  relcheck test ./suites --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter suites by glob pattern")

	return cmd
}

func runTests(opts *TestOptions, suitesDir string, cmd *cobra.Command) error {
	// Validate directory
	if _, err := os.Stat(suitesDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("suites directory not found: %s", suitesDir))
	}

	// Find suite files
	suiteFiles, err := findSuiteFiles(suitesDir, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find suites", err)
	}

	if len(suiteFiles) == 0 {
		if opts.Format == "json" {
			return outputTestJSON(cmd, TestResult{
				Suites: []SuiteResult{},
				Total:  0,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No suites found.")
		return nil
	}

	// Run suites
	result := TestResult{
		Suites: make([]SuiteResult, 0, len(suiteFiles)),
		Total:  len(suiteFiles),
	}

	for _, suiteFile := range suiteFiles {
		suiteResult := runSuite(suiteFile, opts, cmd)
		result.Suites = append(result.Suites, suiteResult)

		if suiteResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	// Output results
	if opts.Format == "json" {
		return outputTestJSON(cmd, result)
	}

	return outputTestText(cmd, result)
}

// findSuiteFiles finds all YAML suite files under dir. Golden directories
// hold no suites and are skipped.
func findSuiteFiles(dir string, filter string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if d.Name() == "golden" && path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		// Only process .yaml and .yml files
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		// Apply filter if specified
		if filter != "" {
			name := strings.TrimSuffix(d.Name(), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// runSuite executes a single suite and returns the result.
func runSuite(suiteFile string, opts *TestOptions, cmd *cobra.Command) SuiteResult {
	w := cmd.OutOrStdout()
	text := opts.Format != "json"

	fail := func(name string, errs ...string) SuiteResult {
		if text {
			fmt.Fprintf(w, "✗ %s\n", name)
			for _, e := range errs {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
		return SuiteResult{Name: name, Pass: false, Errors: errs}
	}

	suite, err := harness.LoadSuite(suiteFile)
	if err != nil {
		return fail(filepath.Base(suiteFile), fmt.Sprintf("failed to load suite: %v", err))
	}

	outcome, failures := harness.Execute(suite)
	snapshot, err := harness.GoldenBytes(outcome)
	if err != nil {
		return fail(suite.Name, fmt.Sprintf("snapshot failed: %v", err))
	}
	goldenPath := harness.GoldenPath(suiteFile, suite.Name)

	// Handle golden file update
	if opts.Update {
		if len(failures) > 0 {
			return fail(suite.Name, failures...)
		}
		if err := harness.WriteGolden(goldenPath, snapshot); err != nil {
			return fail(suite.Name, fmt.Sprintf("failed to update golden file: %v", err))
		}
		if text {
			fmt.Fprintf(w, "✓ %s (golden updated)\n", suite.Name)
		}
		return SuiteResult{Name: suite.Name, Pass: true}
	}

	// Compare with golden file; a missing golden file means expectations only
	match, err := harness.CompareGolden(goldenPath, snapshot)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		match = true
	case err != nil:
		return fail(suite.Name, fmt.Sprintf("golden comparison failed: %v", err))
	}
	if !match {
		failures = append(failures, "outcome does not match golden file (run with --update to regenerate)")
	}

	if len(failures) > 0 {
		return fail(suite.Name, failures...)
	}

	if text {
		fmt.Fprintf(w, "✓ %s\n", suite.Name)
	}
	return SuiteResult{Name: suite.Name, Pass: true}
}

// outputTestJSON outputs the test result as JSON.
func outputTestJSON(cmd *cobra.Command, result TestResult) error {
	formatter := &OutputFormatter{Format: "json", Writer: cmd.OutOrStdout()}
	if result.Failed == 0 {
		return formatter.Success(result)
	}

	message := fmt.Sprintf("%d suite(s) failed", result.Failed)
	if err := formatter.encode(CLIResponse{
		Status: "error",
		Data:   result,
		Error: &CLIError{
			Code:    "E_TEST_FAILED",
			Message: message,
		},
	}); err != nil {
		return err
	}

	// Test failures = exit code 1
	return ReportedExitError(ExitFailure, message, nil)
}

// outputTestText outputs the test result as text.
func outputTestText(cmd *cobra.Command, result TestResult) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d suite(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All suites passed")
	return nil
}
