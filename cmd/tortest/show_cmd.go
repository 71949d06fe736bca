package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tortest/internal/output"
	"tortest/internal/target"
	"tortest/internal/ui/prompt"
	"tortest/internal/ui/styles"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "show [TARGET]",
		Short:   "Show one target's full profile",
		GroupID: GroupTargets,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show the settings path, description, prerequisite tor version and
torrc options of a single target.

With no argument on a terminal, an interactive selector with fuzzy
filtering is shown. Unknown names get close-match suggestions.`,
		Example: `  tortest show RUN_PASSWORD   # Show one target
  tortest show                # Pick interactively
  tortest show ONLINE --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			targets, _, err := loadTargets(ctx, opts)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			} else {
				name, err = pickTarget(targets)
				if err != nil {
					return err
				}
				if name == "" {
					return nil // cancelled
				}
			}

			tgt, err := targets.Get(name)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(toTargetJSON(tgt))
			}

			printField(out, "Name", tgt.Name)
			printField(out, "Config", tgt.ConfigPath)
			if tgt.Description != "" {
				printField(out, "Description", tgt.Description)
			}
			if tgt.Prereq != "" {
				printField(out, "Prereq", "tor "+tgt.Prereq)
			}
			if tgt.HasTorrc {
				printField(out, "Torrc", torrcSummary(tgt))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// pickTarget runs the interactive selector. Returns "" when cancelled.
func pickTarget(targets *target.Set) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("target name required when not running interactively")
	}

	options := make([]prompt.Option, 0, targets.Len())
	for _, name := range targets.Names() {
		tgt, err := targets.Get(name)
		if err != nil {
			return "", err
		}
		options = append(options, prompt.Option{Name: tgt.Name, Description: tgt.Description})
	}

	result, err := prompt.Select("Select a target", options)
	if err != nil {
		return "", err
	}
	if result.Cancelled {
		return "", nil
	}
	return result.Value, nil
}

func printField(out *output.Printer, label, value string) {
	out.Printf("%s %s\n", styles.Label.Render(fmt.Sprintf("%-12s", label+":")), strings.TrimSpace(value))
}
