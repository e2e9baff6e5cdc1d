package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/billable-hours/internal/model"
	"github.com/Tiliavir/billable-hours/internal/storage"
	"github.com/Tiliavir/billable-hours/internal/timecalc"
)

var (
	listToday bool
	listWeek  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List timesheet records",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listToday, "today", false, "Show today's records")
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Show this week's records")
}

func runList(cmd *cobra.Command, args []string) error {
	now := time.Now()

	var from, to time.Time
	switch {
	case listWeek:
		from, to = timecalc.WeekRange(now)
	default:
		// Default to today (covers --today and the bare command).
		from = timecalc.StartOfDay(now)
		to = timecalc.EndOfDay(now)
	}

	records, err := storage.LoadRange(dataDir, from, to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	printList(cmd.OutOrStdout(), records)
	return nil
}

// printList groups records by date and prints one line per record.
func printList(w io.Writer, records []model.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}

	var currentDay string
	for _, r := range records {
		e := r.Entry
		if e.Date != currentDay {
			fmt.Fprintln(w, e.Date)
			currentDay = e.Date
		}

		span := sessionSpan(e)
		if r.Open() {
			fmt.Fprintf(w, "  %s  %s [%s]  ongoing\n", span, e.Resource, e.Kind)
			continue
		}
		fmt.Fprintf(w, "  %s  %s [%s]  %s h actual, %s h billable (%s)\n",
			span, e.Resource, e.Kind,
			timecalc.FormatHours(r.Result.ActualHours),
			timecalc.FormatHours(r.Result.BillableHours),
			r.Result.AppliedRule)
	}
}

// sessionSpan describes how a session's duration was recorded.
func sessionSpan(e model.TimesheetEntry) string {
	if e.TotalHours != nil && *e.TotalHours > 0 {
		return fmt.Sprintf("total %s h", timecalc.FormatHours(*e.TotalHours))
	}
	start, end := e.StartTime, e.EndTime
	if start.IsZero() {
		start = e.OpenReading
	}
	if end.IsZero() {
		end = e.CloseReading
	}
	endStr := end.String()
	if end.IsZero() {
		endStr = "…"
	}
	return fmt.Sprintf("%s–%s", start.String(), endStr)
}
