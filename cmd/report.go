package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/billable-hours/internal/billing"
	"github.com/Tiliavir/billable-hours/internal/config"
	"github.com/Tiliavir/billable-hours/internal/model"
	"github.com/Tiliavir/billable-hours/internal/storage"
	"github.com/Tiliavir/billable-hours/internal/timecalc"
)

var (
	reportWeek   bool
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show billable hour totals for the week",
	Long: `Re-resolve this week's closed records against the current site
configuration and show actual and billable totals per applied rule.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportWeek, "week", false, "Report for this week (default)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

// ruleTotal is the aggregate of all results that resolved to one rule.
type ruleTotal struct {
	Rule    model.Rule `json:"rule"`
	Entries int        `json:"entries"`
	billing.Totals
}

type weekReport struct {
	Week    string         `json:"week"`
	Rules   []ruleTotal    `json:"rules"`
	Total   billing.Totals `json:"total"`
	Skipped int            `json:"skipped"`
}

func runReport(cmd *cobra.Command, args []string) error {
	now := time.Now()

	from, to := timecalc.WeekRange(now)
	records, err := storage.LoadRange(dataDir, from, to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	rep := buildReport(timecalc.ISOWeekLabel(now), records, appCfg)

	w := cmd.OutOrStdout()
	switch reportFormat {
	case "csv":
		printReportCSV(w, rep)
	case "json":
		return writeJSON(w, rep)
	default: // md
		printReportTable(w, rep)
	}
	return nil
}

// buildReport resolves closed records per site and totals them by rule.
// Open sessions and records of unconfigured sites are counted as skipped.
func buildReport(label string, records []model.Record, cfg config.Config) weekReport {
	rep := weekReport{Week: label, Rules: []ruleTotal{}}

	var siteOrder []string
	bySite := map[string][]model.TimesheetEntry{}
	for _, r := range records {
		if r.Open() {
			rep.Skipped++
			continue
		}
		site := r.Entry.Site
		if site == "" {
			site = cfg.DefaultSite
		}
		if _, seen := bySite[site]; !seen {
			siteOrder = append(siteOrder, site)
		}
		bySite[site] = append(bySite[site], r.Entry)
	}

	var all []model.BillableHoursResult
	byRule := map[model.Rule][]model.BillableHoursResult{}
	for _, site := range siteOrder {
		bc, err := cfg.Site(site)
		if err != nil {
			slog.Warn("skipping records of unconfigured site", "site", site, "records", len(bySite[site]))
			rep.Skipped += len(bySite[site])
			continue
		}
		for _, res := range billing.ResolveAll(bySite[site], bc) {
			all = append(all, res)
			byRule[res.AppliedRule] = append(byRule[res.AppliedRule], res)
		}
	}

	for _, rule := range model.Rules {
		results, ok := byRule[rule]
		if !ok {
			continue
		}
		rep.Rules = append(rep.Rules, ruleTotal{Rule: rule, Entries: len(results), Totals: billing.Total(results)})
	}
	rep.Total = billing.Total(all)
	return rep
}

func printReportCSV(w io.Writer, rep weekReport) {
	fmt.Fprintln(w, "rule,entries,actual_hours,billable_hours")
	for _, rt := range rep.Rules {
		fmt.Fprintf(w, "%s,%d,%s,%s\n", rt.Rule, rt.Entries,
			timecalc.FormatHours(rt.TotalActualHours), timecalc.FormatHours(rt.TotalBillableHours))
	}
}

func printReportTable(w io.Writer, rep weekReport) {
	fmt.Fprintf(w, "Week %s\n", rep.Week)
	fmt.Fprintln(w, "------------------------------------------------")
	fmt.Fprintf(w, "%-16s%8s%12s%12s\n", "Rule", "Entries", "Actual", "Billable")
	for _, rt := range rep.Rules {
		fmt.Fprintf(w, "%-16s%8d%12s%12s\n", rt.Rule, rt.Entries,
			timecalc.FormatHours(rt.TotalActualHours), timecalc.FormatHours(rt.TotalBillableHours))
	}
	fmt.Fprintln(w, "------------------------------------------------")
	fmt.Fprintf(w, "%-16s%8s%12s%12s\n", "Total", "",
		timecalc.FormatHours(rep.Total.TotalActualHours), timecalc.FormatHours(rep.Total.TotalBillableHours))
	if rep.Skipped > 0 {
		fmt.Fprintf(w, "(%d open or unresolvable records skipped)\n", rep.Skipped)
	}
}
