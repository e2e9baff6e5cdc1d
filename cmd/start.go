package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/billable-hours/internal/model"
	"github.com/Tiliavir/billable-hours/internal/storage"
	"github.com/Tiliavir/billable-hours/internal/timecalc"
)

var (
	startKind    string
	startComment string
)

var startCmd = &cobra.Command{
	Use:   "start <resource>",
	Short: "Clock in a plant asset, operator or subcontract unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runStart,
}

func init() {
	startCmd.Flags().StringVar(&startKind, "kind", string(model.KindPlant), "Entry kind: plant, operator, subcontract")
	startCmd.Flags().StringVar(&startComment, "comment", "", "Optional comment")
}

func runStart(cmd *cobra.Command, args []string) error {
	now := time.Now()
	kind, err := parseKind(startKind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	site, _ := siteBilling(siteFlag)

	// An earlier session still running is closed without conditions.
	open, openDay, err := storage.FindOpenRecord(dataDir, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if open != nil {
		fmt.Fprintf(os.Stderr, "Warning: auto-stopping open session for %q\n", open.Entry.Resource)
		if _, err := stopSession(dataDir, *open, openDay, now, entryFlags{}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	rec := startSession(args[0], kind, site, startComment, now)
	if err := storage.UpsertRecord(dataDir, now, rec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Clocked in %q on site %q at %s\n", rec.Entry.Resource, site, timecalc.ClockOf(now))
	return nil
}

// startSession builds an open record whose start time is the clock reading
// of now.
func startSession(resource string, kind model.Kind, site, comment string, now time.Time) model.Record {
	return model.Record{
		Entry: model.TimesheetEntry{
			ID:        storage.NewRecordID(),
			Site:      site,
			Kind:      kind,
			Resource:  resource,
			Comment:   comment,
			Date:      now.Format(timecalc.DateLayout),
			StartTime: model.Clock(timecalc.ClockOf(now)),
		},
		Source: "clock",
	}
}
