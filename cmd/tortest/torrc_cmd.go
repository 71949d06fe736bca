package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"tortest/internal/log"
	"tortest/internal/output"
)

func newTorrcCmd(opts *rootOptions) *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "torrc TARGET",
		Short:   "Print a target's torrc option tokens",
		GroupID: GroupTargets,
		Args:    cobra.ExactArgs(1),
		Long: `Print the torrc option tokens a target synthesizes, one per line.

A target with a blank torrc entry prints nothing (it runs with an
unmodified torrc); a target without a torrc entry is an error.`,
		Example: `  tortest torrc RUN_PASSWORD          # PORT and PASSWORD
  tortest torrc RUN_NONE              # Empty: no options
  tortest torrc RUN_PASSWORD --copy   # Copy tokens to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			targets, _, err := loadTargets(ctx, opts)
			if err != nil {
				return err
			}

			tgt, err := targets.Get(args[0])
			if err != nil {
				return err
			}

			// A blank entry is an empty option list; no entry at all is
			// an error.
			if !tgt.HasTorrc {
				return fmt.Errorf("target %s has no torrc entry", tgt.Name)
			}

			for _, tok := range tgt.Torrc {
				out.Println(tok)
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(strings.Join(tgt.Torrc, "\n")); err != nil {
					l.Warnf("failed to copy to clipboard: %v", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy tokens to clipboard")

	return cmd
}
