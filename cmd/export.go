package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/billable-hours/internal/model"
	"github.com/Tiliavir/billable-hours/internal/storage"
	"github.com/Tiliavir/billable-hours/internal/timecalc"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export this week's records and their billing results to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md")
}

func runExport(cmd *cobra.Command, args []string) error {
	from, to := timecalc.WeekRange(time.Now())

	records, err := storage.LoadRange(dataDir, from, to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	w := cmd.OutOrStdout()
	switch exportFormat {
	case "json":
		if records == nil {
			records = []model.Record{}
		}
		if err := writeJSON(w, records); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	case "md":
		printList(w, records)
	default: // csv
		printCSV(w, records)
	}
	return nil
}

func printCSV(w io.Writer, records []model.Record) {
	fmt.Fprintln(w, "id,date,site,kind,resource,start,end,total_hours,breakdown,rain_day,public_holiday,actual_hours,billable_hours,applied_rule,minimum_applied,notes,comment")
	for _, r := range records {
		e := r.Entry
		total := ""
		if e.TotalHours != nil {
			total = strconv.FormatFloat(*e.TotalHours, 'f', -1, 64)
		}
		start, end := e.StartTime, e.EndTime
		if start.IsZero() {
			start = e.OpenReading
		}
		if end.IsZero() {
			end = e.CloseReading
		}

		var actual, billable, rule, minimum, notes string
		if res := r.Result; res != nil {
			actual = timecalc.FormatHours(res.ActualHours)
			billable = timecalc.FormatHours(res.BillableHours)
			rule = string(res.AppliedRule)
			minimum = timecalc.FormatHours(res.MinimumApplied)
			notes = res.Notes
		}

		fields := []string{
			e.ID,
			e.Date,
			e.Site,
			string(e.Kind),
			e.Resource,
			start.String(),
			end.String(),
			total,
			strconv.FormatBool(e.IsBreakdown),
			strconv.FormatBool(e.WeatherAffected()),
			strconv.FormatBool(e.IsPublicHoliday),
			actual,
			billable,
			rule,
			minimum,
			notes,
			e.Comment,
		}
		for i, f := range fields {
			fields[i] = csvEscape(f)
		}
		fmt.Fprintln(w, strings.Join(fields, ","))
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
