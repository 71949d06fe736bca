package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tortest/internal/config"
	"tortest/internal/log"
	"tortest/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupTargets  = "targets"
	GroupSettings = "settings"
)

// rootOptions holds global flags and shared state injected into commands.
type rootOptions struct {
	settings []string // --settings: base file first, overrides after
	verbose  bool
	quiet    bool
	noColor  bool

	prefs config.Config
}

// newRootCmd builds the command tree. Output writers are parameters so
// integration tests can capture them.
func newRootCmd(prefs config.Config, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{prefs: prefs}

	rootCmd := &cobra.Command{
		Use:   "tortest",
		Short: "Inspect tor integration-test target settings",
		Long: `tortest loads the line-oriented settings files driving tor's
integration-test targets and answers questions about them: which targets
exist, what torrc options a target synthesizes, which prerequisite tor
version it needs, and whether the settings files are well formed.

Settings are layered: the base file first, then any override files, later
files winning on conflicts.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Diagnostics to stderr, data to stdout.
			ctx := cmd.Context()
			ctx = log.WithLogger(ctx, log.New(stderr, opts.verbose, opts.quiet))
			forceColor := opts.prefs.Color == config.ColorAlways
			noColor := opts.noColor || opts.prefs.Color == config.ColorNever
			ctx = output.WithPrinter(ctx, output.New(stdout, forceColor, noColor))
			cmd.SetContext(ctx)

			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Global flags
	rootCmd.PersistentFlags().StringSliceVarP(&opts.settings, "settings", "s", nil,
		"Settings file(s); first is the base, later ones override (default from config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show debug diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress warnings")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupTargets, Title: "Target Commands:"},
		&cobra.Group{ID: GroupSettings, Title: "Settings Commands:"},
	)

	// Target commands
	rootCmd.AddCommand(newTargetsCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newTorrcCmd(opts))

	// Settings commands
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newUsageCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))

	return rootCmd
}

// Execute loads preferences, wires up the context and runs the command tree.
func Execute() {
	prefs, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCmd(prefs, os.Stdout, os.Stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'tortest -h' for help")
		os.Exit(1)
	}
}
