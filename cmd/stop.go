package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/billable-hours/internal/model"
	"github.com/Tiliavir/billable-hours/internal/storage"
	"github.com/Tiliavir/billable-hours/internal/timecalc"
)

var stopFlags entryFlags

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Clock out the open session and resolve its billable hours",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func init() {
	stopFlags.registerConditions(stopCmd)
	stopCmd.Flags().StringVar(&stopFlags.comment, "comment", "", "Append a comment to the entry")
}

func runStop(cmd *cobra.Command, args []string) error {
	now := time.Now()

	open, openDay, err := storage.FindOpenRecord(dataDir, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if open == nil {
		fmt.Fprintln(os.Stderr, "No open session to stop.")
		os.Exit(1)
	}

	rec, err := stopSession(dataDir, *open, openDay, now, stopFlags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Clocked out %q after %s\n",
		rec.Entry.Resource, timecalc.FormatHoursMinutes(rec.Result.ActualHours))
	printResult(cmd.OutOrStdout(), rec.Entry, *rec.Result)
	return nil
}

// stopSession closes an open record at the clock reading of now, applies
// the condition flags and stores the resolved result on the session's day.
// Readings are compared within one day: a session left open past midnight
// is not wrapped and resolves as invalid unless the clock-out reading is
// later than the clock-in reading.
func stopSession(base string, rec model.Record, day time.Time, now time.Time, f entryFlags) (model.Record, error) {
	e := rec.Entry
	if f.comment != "" {
		if e.Comment != "" {
			e.Comment += "\n" + f.comment
		} else {
			e.Comment = f.comment
		}
	}
	f.applyConditions(&e)
	e.EndTime = model.Clock(timecalc.ClockOf(now))

	if !timecalc.SameDay(day, now) {
		slog.Warn("session crossed midnight; clock readings are compared within its start day",
			"id", e.ID, "started", e.Date, "stopped", now.Format(timecalc.DateLayout))
	}

	bc, err := appCfg.Site(e.Site)
	if err != nil {
		return model.Record{}, err
	}
	return submitEntry(base, e, day, bc, now, rec.Source)
}
