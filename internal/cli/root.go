package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Database   string // SQLite run history; empty disables recording

	// Config is loaded by the root command before any subcommand runs.
	// Subcommands built on their own (tests) fall back to DefaultConfig.
	Config *Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the relcheck CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "relcheck",
		Short: "relcheck - binary relation analyzer",
		Long: `Analyze binary relations over finite sets.

A relation is read from a two-line text source ("{a, b}" then
"{(a, b), (b, a)}") or from a CUE/JSON document. relcheck reports its
Boolean matrix, the six basic properties, whether it is an equivalence
relation or a partial ordering, and its reflexive, symmetric and
transitive closures.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to relcheck.yaml (default: discovered from cwd)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite run history")

	// Add subcommands
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewMenuCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// prepare loads the config file, applies it under any explicit flags, and
// sets up logging.
func (opts *RootOptions) prepare(cmd *cobra.Command) error {
	cfg, configPath, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	opts.Config = cfg

	// Flags win over env and file; cobra only tells us whether they were set.
	if !cmd.Flags().Changed("format") {
		opts.Format = cfg.Format
	}
	if !cmd.Flags().Changed("db") {
		opts.Database = cfg.Database.Path
	}

	// Validate format flag
	if !isValidFormat(opts.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
	}

	setupLogging(cmd.ErrOrStderr(), opts.Verbose)
	if configPath != "" {
		slog.Debug("config loaded", "path", configPath)
	}
	return nil
}

// config returns the loaded config, or defaults when none was loaded.
func (opts *RootOptions) config() *Config {
	if opts.Config == nil {
		return DefaultConfig()
	}
	return opts.Config
}

// setupLogging configures the default slog logger: text to w, Debug when
// verbose.
func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
