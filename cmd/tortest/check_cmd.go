package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tortest/internal/conf"
	"tortest/internal/output"
	"tortest/internal/target"
	"tortest/internal/torversion"
	"tortest/internal/ui/styles"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Validate the settings files",
		GroupID: GroupSettings,
		Args:    cobra.NoArgs,
		Long: `Validate the settings files: every file parses, every target
attribute belongs to a defined target, and every prerequisite is a
parsable tor version. Targets without a description are reported as
warnings but don't fail the check.`,
		Example: `  tortest check
  tortest check -s test/settings.cfg -s local.cfg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			paths, err := opts.settingsPaths()
			if err != nil {
				return err
			}

			out.Println("Checking settings...")
			out.Println()

			problems := 0
			var table *conf.Table
			for _, path := range paths {
				t, err := conf.Load(path)
				if err != nil {
					printCheck(out, checkFail, err.Error())
					problems++
					continue
				}
				printCheck(out, checkPass, fmt.Sprintf("%s (%d entries)", path, t.Len()))
				if table == nil {
					table = t
				} else {
					table = conf.Merge(table, t)
				}
			}

			if table == nil {
				return fmt.Errorf("check failed: no settings file could be loaded")
			}

			targets := target.FromTable(table)
			printCheck(out, checkPass, fmt.Sprintf("%d targets defined", targets.Len()))

			for _, orphan := range targets.Orphaned(table) {
				printCheck(out, checkFail,
					fmt.Sprintf("orphaned entry %q: no matching %s", orphan, target.KeyConfig))
				problems++
			}

			for _, name := range targets.Names() {
				tgt, err := targets.Get(name)
				if err != nil {
					return err
				}
				if tgt.Prereq != "" {
					if _, err := torversion.Parse(tgt.Prereq); err != nil {
						printCheck(out, checkFail, fmt.Sprintf("target %s: bad prereq: %v", name, err))
						problems++
					}
				}
				if tgt.Description == "" {
					printCheck(out, checkWarn, fmt.Sprintf("target %s has no description", name))
				}
			}

			out.Println()
			if problems > 0 {
				return fmt.Errorf("%d problem(s) found", problems)
			}
			out.Println("All checks passed")
			return nil
		},
	}

	return cmd
}

const (
	checkPass = iota
	checkWarn
	checkFail
)

func printCheck(out *output.Printer, kind int, msg string) {
	switch kind {
	case checkPass:
		out.Printf("  %s %s\n", styles.SuccessStyle.Render("✓"), msg)
	case checkWarn:
		out.Printf("  %s %s\n", styles.AccentStyle.Render("!"), msg)
	default:
		out.Printf("  %s %s\n", styles.ErrorStyle.Render("✗"), msg)
	}
}
