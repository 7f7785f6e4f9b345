package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tafaritech/brandkit/internal/audit"
	"github.com/tafaritech/brandkit/internal/render"
)

type auditFlags struct {
	strict       bool
	failuresOnly bool
	jsonOutput   bool
}

func newAuditCmd(app *AppContext) *cobra.Command {
	flags := &auditFlags{}

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check palette contrast against each display mode background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := audit.Run(app.Catalog)
			if err != nil {
				return newCommandError("audit", "brand catalog", err, "Check the colours in your overlay catalog.")
			}

			failures := report.Failures()
			app.Logger.WithFields(map[string]any{
				"checks":   len(report.Checks),
				"failures": len(failures),
			}).Info("contrast audit complete")

			checks := report.Checks
			if flags.failuresOnly {
				checks = failures
			}

			out := cmd.OutOrStdout()
			if flags.jsonOutput {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(audit.Report{Checks: checks}); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, formatChecks(checks))
				fmt.Fprintf(out, "\n%d checks, %d below AA (%.1f:1)\n", len(report.Checks), len(failures), audit.LargeAA)
			}

			if flags.strict && len(failures) > 0 {
				return newCommandError("audit", "contrast",
					fmt.Errorf("%d palette colours below AA", len(failures)),
					"Adjust the listed colours or drop --strict.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Exit non-zero when any check is below AA")
	cmd.Flags().BoolVar(&flags.failuresOnly, "failures", false, "Only list checks below AA")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Print the report as JSON")

	return cmd
}

func formatChecks(checks []audit.Check) string {
	rows := make([][]string, 0, len(checks))
	for _, c := range checks {
		rows = append(rows, []string{
			string(c.Brand),
			string(c.Mode),
			string(c.Role),
			c.Color,
			c.Background,
			fmt.Sprintf("%.2f", c.Ratio),
			string(c.Level),
		})
	}
	return render.Table([]string{"BRAND", "MODE", "ROLE", "COLOR", "BACKGROUND", "RATIO", "LEVEL"}, rows)
}
