package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/billable-hours/internal/billing"
	"github.com/Tiliavir/billable-hours/internal/model"
	"github.com/Tiliavir/billable-hours/internal/storage"
)

var submitFlags entryFlags

var submitCmd = &cobra.Command{
	Use:   "submit <resource>",
	Short: "Resolve a timesheet entry and save it",
	Long: `Resolve a timesheet entry for a plant asset, operator or subcontract
unit and store the entry together with its billing result.`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	submitFlags.register(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	now := time.Now()
	entry, day, err := submitFlags.entry(cmd, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	site, bc := siteBilling(siteFlag)
	entry.Site = site
	entry.Resource = args[0]

	rec, err := submitEntry(dataDir, entry, day, bc, now, "manual")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	printResult(cmd.OutOrStdout(), rec.Entry, *rec.Result)
	return nil
}

// submitEntry resolves entry under bc and stores it as a closed record on
// day. An entry without an ID is given a new one.
func submitEntry(base string, entry model.TimesheetEntry, day time.Time, bc model.BillingConfig, now time.Time, source string) (model.Record, error) {
	if entry.ID == "" {
		entry.ID = storage.NewRecordID()
	}
	res := billing.Resolve(entry, bc)
	slog.Debug("resolved entry",
		"id", entry.ID, "site", entry.Site, "rule", res.AppliedRule,
		"actual", res.ActualHours, "billable", res.BillableHours)
	if res.AppliedRule == model.RuleInvalid {
		slog.Warn("entry has no recorded time; saved as invalid", "id", entry.ID, "resource", entry.Resource)
	}

	submitted := now
	rec := model.Record{
		Entry:       entry,
		Result:      &res,
		SubmittedAt: &submitted,
		Source:      source,
	}
	if err := storage.UpsertRecord(base, day, rec); err != nil {
		return model.Record{}, err
	}
	return rec, nil
}
