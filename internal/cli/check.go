package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/relcheck/internal/engine"
	"github.com/roach88/relcheck/internal/ir"
	"github.com/roach88/relcheck/internal/loader"
	"github.com/roach88/relcheck/internal/report"
	"github.com/roach88/relcheck/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions

	// IDGenerator allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator store.IDGenerator
}

// CheckResult is the JSON payload for one analyzed source.
type CheckResult struct {
	Source      string       `json:"source"`
	Elements    []ir.Element `json:"elements"`
	Pairs       []ir.Pair    `json:"pairs"`
	Result      ir.Result    `json:"result"`
	Fingerprint string       `json:"fingerprint"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return newCheckCommand(&CheckOptions{RootOptions: rootOpts})
}

func newCheckCommand(opts *CheckOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <source>...",
		Short: "Analyze relations",
		Long: `Load each relation source, analyze it and print the report.

Sources ending in .cue or .json are read as documents with "set" and
"relation" fields; anything else is the two-line text format.

With a database configured (--db or database.path), every successful
analysis is recorded and can be listed with "relcheck history".

Exit codes:
  0 - All sources analyzed
  2 - A source was not found or was malformed

Examples:
  relcheck check Relation1.txt
  relcheck check relations/*.txt --format json
  relcheck check --db ./relcheck.db Relation2.txt`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	return cmd
}

func runCheck(opts *CheckOptions, sources []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	rec, err := openRecorder(opts.Database, opts.IDGenerator)
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return ReportedExitError(ExitCommandError, "failed to open database", err)
	}
	defer rec.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var firstErr error
	for i, source := range sources {
		if i > 0 && opts.Format != "json" {
			fmt.Fprintln(formatter.Writer)
		}
		if err := checkSource(ctx, formatter, rec, source); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// checkSource analyzes one source and writes its report or error.
func checkSource(ctx context.Context, formatter *OutputFormatter, rec *recorder, source string) error {
	rel, res, err := analyze(source)
	if err != nil {
		code := loadErrorCode(err)
		_ = formatter.Error(code, err.Error(), map[string]string{"source": source})
		return ReportedExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, source), err)
	}

	runID, err := rec.record(ctx, source, rel, res)
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), map[string]string{"source": source})
		return ReportedExitError(ExitCommandError, "failed to record run", err)
	}

	if formatter.Format == "json" {
		fingerprint, err := ir.RelationHash(rel)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to fingerprint relation", err)
		}
		return formatter.encode(CLIResponse{
			Status: "ok",
			Data: CheckResult{
				Source:      source,
				Elements:    nonNilElements(rel.Elements),
				Pairs:       rel.Pairs(),
				Result:      res,
				Fingerprint: fingerprint,
			},
			RunID: runID,
		})
	}

	if err := report.Analysis(formatter.Writer, source, rel, res); err != nil {
		return WrapExitError(ExitFailure, "failed to write report", err)
	}
	if runID != "" {
		formatter.VerboseLog("Recorded run %s", runID)
	}
	return nil
}

// analyze loads a source and runs the engine over it. check and menu both
// go through here.
func analyze(source string) (ir.Relation, ir.Result, error) {
	slog.Debug("loading relation", "source", source)
	rel, err := loader.Load(source)
	if err != nil {
		slog.Debug("load failed", "source", source, "error", err)
		return ir.Relation{}, ir.Result{}, err
	}

	res := engine.Analyze(rel)
	slog.Debug("relation analyzed",
		"source", source,
		"elements", rel.Size(),
		"pairs", rel.Matrix.Count(),
		"equivalence_relation", res.EquivalenceRelation,
		"partial_ordering", res.PartialOrdering,
	)
	return rel, res, nil
}

func nonNilElements(elements []ir.Element) []ir.Element {
	if elements == nil {
		return []ir.Element{}
	}
	return elements
}

// recorder writes runs to the history store. A nil-store recorder is a
// no-op so callers need not check whether history is enabled.
type recorder struct {
	store *store.Store
	gen   store.IDGenerator
}

// openRecorder opens the run history at path. An empty path disables
// recording.
func openRecorder(path string, gen store.IDGenerator) (*recorder, error) {
	if path == "" {
		return &recorder{}, nil
	}

	slog.Debug("opening database", "path", path)
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		gen = store.UUIDv7Generator{}
	}
	return &recorder{store: st, gen: gen}, nil
}

func (r *recorder) record(ctx context.Context, source string, rel ir.Relation, res ir.Result) (string, error) {
	if r.store == nil {
		return "", nil
	}
	run, err := r.store.RecordRun(ctx, r.gen, source, rel, res)
	if err != nil {
		return "", err
	}
	slog.Debug("run recorded", "id", run.ID, "seq", run.Seq, "source", source)
	return run.ID, nil
}

func (r *recorder) Close() {
	if r.store == nil {
		return
	}
	if err := r.store.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
