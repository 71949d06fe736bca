package main

import (
	"github.com/spf13/cobra"

	"tortest/internal/output"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:     "get KEY [IDENTIFIER]",
		Short:   "Look up a raw settings value",
		GroupID: GroupSettings,
		Args:    cobra.RangeArgs(1, 2),
		Long: `Look up one value from the merged settings table.

With a single argument the key is read as a plain scalar; a second
argument selects an identifier-qualified entry. A missing key is an
error unless --default supplies a fallback.`,
		Example: `  tortest get integ.test.core
  tortest get target.config ONLINE
  tortest get target.prereq RUN_NONE --default none`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			table, err := loadTable(ctx, opts)
			if err != nil {
				return err
			}

			ident := ""
			if len(args) > 1 {
				ident = args[1]
			}

			var value string
			if cmd.Flags().Changed("default") {
				value = table.GetWithDefault(args[0], ident, defaultValue)
			} else {
				value, err = table.GetWith(args[0], ident)
				if err != nil {
					return err
				}
			}

			out.Println(value)
			return nil
		},
	}

	cmd.Flags().StringVar(&defaultValue, "default", "", "Value to print when the key is absent")

	return cmd
}
