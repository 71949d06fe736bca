package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"tortest/internal/output"
	"tortest/internal/ui"
)

func newTargetsCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "targets",
		Short:   "List integration-test targets",
		Aliases: []string{"ls"},
		GroupID: GroupTargets,
		Args:    cobra.NoArgs,
		Long: `List every target defined by the settings files, in definition
order, with its description, prerequisite tor version and torrc options.`,
		Example: `  tortest targets                      # Table of all targets
  tortest targets -s test/settings.cfg # Explicit settings file
  tortest targets --json               # Output as JSON for scripting`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			targets, _, err := loadTargets(ctx, opts)
			if err != nil {
				return err
			}

			if jsonOutput {
				entries := make([]targetJSON, 0, targets.Len())
				for _, name := range targets.Names() {
					tgt, err := targets.Get(name)
					if err != nil {
						return err
					}
					entries = append(entries, toTargetJSON(tgt))
				}
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if targets.Len() == 0 {
				out.Println("No targets defined")
				return nil
			}

			headers := []string{"NAME", "DESCRIPTION", "PREREQ", "TORRC"}
			var rows [][]string
			for _, name := range targets.Names() {
				tgt, err := targets.Get(name)
				if err != nil {
					return err
				}
				prereq := tgt.Prereq
				if prereq == "" {
					prereq = "-"
				}
				rows = append(rows, []string{tgt.Name, tgt.Description, prereq, torrcSummary(tgt)})
			}

			out.Print(ui.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
