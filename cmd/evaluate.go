package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/billable-hours/internal/billing"
	"github.com/Tiliavir/billable-hours/internal/model"
	"github.com/Tiliavir/billable-hours/internal/timecalc"
)

var (
	evaluateFlags  entryFlags
	evaluateFormat string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Resolve billable hours for a session without saving it",
	Args:  cobra.NoArgs,
	RunE:  runEvaluate,
}

func init() {
	evaluateFlags.register(evaluateCmd)
	evaluateCmd.Flags().StringVar(&evaluateFormat, "format", "md", "Output format: md, json")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	entry, _, err := evaluateFlags.entry(cmd, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	site, bc := siteBilling(siteFlag)
	entry.Site = site

	res := billing.Resolve(entry, bc)
	slog.Debug("resolved entry", "site", site, "rule", res.AppliedRule, "actual", res.ActualHours, "billable", res.BillableHours)

	if evaluateFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	printResult(cmd.OutOrStdout(), entry, res)
	return nil
}

// printResult writes a short human-readable summary of a resolved entry.
func printResult(w io.Writer, e model.TimesheetEntry, r model.BillableHoursResult) {
	fmt.Fprintf(w, "Date:     %s\n", e.Date)
	if e.Site != "" {
		fmt.Fprintf(w, "Site:     %s\n", e.Site)
	}
	if e.Resource != "" {
		fmt.Fprintf(w, "Resource: %s (%s)\n", e.Resource, e.Kind)
	}
	fmt.Fprintf(w, "Rule:     %s\n", r.AppliedRule)
	fmt.Fprintf(w, "Actual:   %s h\n", timecalc.FormatHours(r.ActualHours))
	fmt.Fprintf(w, "Minimum:  %s h\n", timecalc.FormatHours(r.MinimumApplied))
	fmt.Fprintf(w, "Billable: %s h\n", timecalc.FormatHours(r.BillableHours))
	fmt.Fprintf(w, "Notes:    %s\n", r.Notes)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
