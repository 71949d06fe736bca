package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tortest/internal/output"
)

// helpKey is the settings entry holding the runner's help text.
const helpKey = "msg.help"

func newUsageCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "usage",
		Short:   "Print the test runner's help text",
		GroupID: GroupSettings,
		Args:    cobra.NoArgs,
		Long: `Print the help text the test runner shows for --help, taken
verbatim from the msg.help entry of the settings files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			table, err := loadTable(ctx, opts)
			if err != nil {
				return err
			}

			text, err := table.Get(helpKey)
			if err != nil {
				return fmt.Errorf("settings define no %s entry: %w", helpKey, err)
			}

			out.Println(text)
			return nil
		},
	}

	return cmd
}
