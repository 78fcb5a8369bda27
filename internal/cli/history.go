package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/relcheck/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit    int    // most recent N runs; 0 lists all
	Relation string // relation fingerprint filter
}

// HistoryResult holds the runs listed by the history command.
type HistoryResult struct {
	Runs  []store.Run `json:"runs"`
	Total int         `json:"total"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long: `List the analyses recorded by check and menu, oldest first.

Requires a database (--db or database.path in relcheck.yaml).

Examples:
  relcheck history --db ./relcheck.db
  relcheck history --db ./relcheck.db --limit 5
  relcheck history --db ./relcheck.db --relation 3f2a9c01b7de --format json

--relation accepts the full relation hash or any prefix of at least six
characters, such as the RELATION column of the text listing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "show the most recent N runs (0 for all)")
	cmd.Flags().StringVar(&opts.Relation, "relation", "", "only runs of the relation whose hash starts with this prefix")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	if opts.Database == "" {
		return NewExitError(ExitCommandError, "no database configured: use --db or set database.path")
	}
	if opts.Limit < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid limit %d: must be >= 0", opts.Limit))
	}
	if opts.Relation != "" && len(strings.TrimSpace(opts.Relation)) < store.MinRelationPrefix {
		return NewExitError(ExitCommandError, fmt.Sprintf(
			"invalid relation %q: need at least %d characters of the hash", opts.Relation, store.MinRelationPrefix))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	runs, err := readHistory(ctx, st, opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read runs", err)
	}

	result := HistoryResult{Runs: runs, Total: len(runs)}
	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(result)
	}
	return outputHistoryText(cmd, result)
}

func readHistory(ctx context.Context, st *store.Store, opts *HistoryOptions) ([]store.Run, error) {
	if opts.Relation == "" {
		return st.ReadRuns(ctx, opts.Limit)
	}

	runs, err := st.ReadRunsByRelation(ctx, opts.Relation)
	if err != nil {
		return nil, err
	}
	if opts.Limit > 0 && len(runs) > opts.Limit {
		runs = runs[len(runs)-opts.Limit:]
	}
	return runs, nil
}

// outputHistoryText outputs one line per run.
func outputHistoryText(cmd *cobra.Command, result HistoryResult) error {
	w := cmd.OutOrStdout()

	if len(result.Runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-5s %-12s %-12s %4s %5s  %-9s %s\n", "SEQ", "RUN", "RELATION", "|S|", "|R|", "KIND", "SOURCE")
	for _, run := range result.Runs {
		fmt.Fprintf(w, "%-5d %-12s %-12s %4d %5d  %-9s %s\n",
			run.Seq,
			truncateID(run.ID),
			truncateID(run.RelationHash),
			run.Elements,
			run.Pairs,
			runKind(run),
			run.Source)
	}
	fmt.Fprintf(w, "\n%d run(s)\n", result.Total)
	return nil
}

// runKind summarizes the derived properties of a run.
func runKind(run store.Run) string {
	var kinds []string
	if run.Result.EquivalenceRelation {
		kinds = append(kinds, "equiv")
	}
	if run.Result.PartialOrdering {
		kinds = append(kinds, "poset")
	}
	if len(kinds) == 0 {
		return "-"
	}
	return strings.Join(kinds, ",")
}

// truncateID shortens long IDs and hashes for display.
func truncateID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
