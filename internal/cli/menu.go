package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/relcheck/internal/loader"
	"github.com/roach88/relcheck/internal/report"
	"github.com/roach88/relcheck/internal/store"
)

const menuRule = "----------------------------------"

// MenuOptions holds flags for the menu command.
type MenuOptions struct {
	*RootOptions

	// IDGenerator allows overriding the run ID generator (for testing).
	IDGenerator store.IDGenerator
}

// NewMenuCommand creates the menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	return newMenuCommand(&MenuOptions{RootOptions: rootOpts})
}

func newMenuCommand(opts *MenuOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive relation menu",
		Long: `Pick relations to analyze from a numbered menu.

The menu lists the configured presets (Relation1.txt to Relation4.txt by
default), then "Custom Relation" which asks for a filename, then "Quit".
A missing or malformed source is reported and the menu is shown again.
The menu ends on Quit or end of input.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(opts, cmd)
		},
	}

	return cmd
}

func runMenu(opts *MenuOptions, cmd *cobra.Command) error {
	rec, err := openRecorder(opts.Database, opts.IDGenerator)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer rec.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	m := &menu{
		in:      bufio.NewScanner(cmd.InOrStdin()),
		out:     cmd.OutOrStdout(),
		presets: opts.config().Presets,
		rec:     rec,
	}
	return m.run(ctx)
}

// menu is the interactive loop. Options 1..len(presets) are the presets,
// then custom, then quit.
type menu struct {
	in      *bufio.Scanner
	out     io.Writer
	presets []Preset
	rec     *recorder
}

func (m *menu) run(ctx context.Context) error {
	m.welcome()
	custom := len(m.presets) + 1
	quit := len(m.presets) + 2

	for {
		m.options()
		line, ok := m.prompt("Please enter an option: ")
		if !ok {
			fmt.Fprintln(m.out)
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.out, "Please enter an integer value.")
			continue
		}

		switch {
		case choice >= 1 && choice <= len(m.presets):
			if err := m.check(ctx, m.presets[choice-1].Path); err != nil {
				return err
			}
		case choice == custom:
			name, ok := m.prompt("Please enter the filename of the custom relation: ")
			if !ok {
				fmt.Fprintln(m.out)
				return nil
			}
			if err := m.check(ctx, strings.TrimSpace(name)); err != nil {
				return err
			}
		case choice == quit:
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid input. Try again.")
		}
	}
}

func (m *menu) welcome() {
	fmt.Fprintln(m.out, "Welcome to the Relations program!")
	fmt.Fprintln(m.out, "Select a relation file listed below.")
	fmt.Fprintln(m.out, "The set and relation will be displayed; the relation will also be presented in a Boolean matrix.")
	fmt.Fprintln(m.out, "Afterwards, the relation's properties will be calculated.")
	fmt.Fprintln(m.out, "Finally, if the relation is not reflexive/symmetric/transitive, then the closure set will be calculated to make the respective property hold true.")
}

func (m *menu) options() {
	fmt.Fprintf(m.out, "\n%s\n", menuRule)
	for i, p := range m.presets {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, p.Name)
	}
	fmt.Fprintf(m.out, "%d. Custom Relation\n", len(m.presets)+1)
	fmt.Fprintf(m.out, "%d. Quit\n", len(m.presets)+2)
	fmt.Fprintln(m.out, menuRule)
}

// prompt writes msg and reads one line. ok is false at end of input.
func (m *menu) prompt(msg string) (string, bool) {
	fmt.Fprint(m.out, msg)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// check analyzes one source and prints its report. Load errors are shown
// and the menu continues; only output and database failures end it.
func (m *menu) check(ctx context.Context, source string) error {
	rel, res, err := analyze(source)
	switch {
	case loader.IsSourceNotFound(err):
		fmt.Fprintln(m.out, "[ERROR] File does not exist.")
		return nil
	case err != nil:
		fmt.Fprintf(m.out, "[ERROR] %v\n", err)
		return nil
	}

	if err := report.Analysis(m.out, source, rel, res); err != nil {
		return WrapExitError(ExitFailure, "failed to write report", err)
	}
	if _, err := m.rec.record(ctx, source, rel, res); err != nil {
		return WrapExitError(ExitCommandError, "failed to record run", err)
	}
	return nil
}
