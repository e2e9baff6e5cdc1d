package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/billable-hours/internal/config"
	"github.com/Tiliavir/billable-hours/internal/timecalc"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Show configured sites and their billing rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printSites(cmd.OutOrStdout(), appCfg)
		return nil
	},
}

func printSites(w io.Writer, cfg config.Config) {
	for _, name := range cfg.SiteNames() {
		bc := cfg.Sites[name]
		marker := ""
		if name == cfg.DefaultSite {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%s%s\n", name, marker)
		fmt.Fprintf(w, "  Weekday minimum:        %s h\n", timecalc.FormatHours(bc.WeekdayMinimumHours))
		fmt.Fprintf(w, "  Saturday minimum:       %s h\n", timecalc.FormatHours(bc.SaturdayMinimumHours))
		fmt.Fprintf(w, "  Sunday minimum:         %s h\n", timecalc.FormatHours(bc.SundayMinimumHours))
		fmt.Fprintf(w, "  Public holiday minimum: %s h\n", timecalc.FormatHours(bc.PublicHolidayMinimumHours))
		if bc.RainDayEnabled {
			fmt.Fprintf(w, "  Rain day minimum:       %s h\n", timecalc.FormatHours(bc.RainDayMinimumHours))
		} else {
			fmt.Fprintln(w, "  Rain day rule:          disabled")
		}
		if bc.BreakdownRuleEnabled {
			fmt.Fprintln(w, "  Breakdown rule:         bill recorded hours")
		} else {
			fmt.Fprintln(w, "  Breakdown rule:         disabled")
		}
	}
	if warnings := cfg.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Warnings:")
		for _, msg := range warnings {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}
}
