package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/billable-hours/internal/billing"
	"github.com/Tiliavir/billable-hours/internal/model"
	"github.com/Tiliavir/billable-hours/internal/timecalc"
)

// entryFlags are the flags shared by commands that describe a whole session.
type entryFlags struct {
	date         string
	start        string
	end          string
	openReading  string
	closeReading string
	total        float64
	kind         string
	comment      string
	breakdown    bool
	rain         bool
	inclement    bool
	holiday      bool
}

func (f *entryFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.date, "date", "", "Session date (YYYY-MM-DD); defaults to today")
	fs.StringVar(&f.start, "start", "", `Start time ("HH:MM" or decimal hours)`)
	fs.StringVar(&f.end, "end", "", `End time ("HH:MM" or decimal hours)`)
	fs.StringVar(&f.openReading, "open", "", "Opening meter reading, used when --start is absent")
	fs.StringVar(&f.closeReading, "close", "", "Closing meter reading, used when --end is absent")
	fs.Float64Var(&f.total, "total", 0, "Precomputed total hours; overrides start/end when positive")
	fs.StringVar(&f.kind, "kind", string(model.KindPlant), "Entry kind: plant, operator, subcontract")
	fs.StringVar(&f.comment, "comment", "", "Optional comment")
	f.registerConditions(cmd)
}

func (f *entryFlags) registerConditions(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVar(&f.breakdown, "breakdown", false, "Equipment broke down during the session")
	fs.BoolVar(&f.rain, "rain", false, "Rain day")
	fs.BoolVar(&f.inclement, "inclement", false, "Inclement weather (same effect as --rain)")
	fs.BoolVar(&f.holiday, "holiday", false, "Session falls on a public holiday")
}

// entry builds a TimesheetEntry from the parsed flags. Time fields are only
// set when their flag was given, so absent fields stay absent. It returns
// the calendar day the entry belongs to.
func (f *entryFlags) entry(cmd *cobra.Command, now time.Time) (model.TimesheetEntry, time.Time, error) {
	kind, err := parseKind(f.kind)
	if err != nil {
		return model.TimesheetEntry{}, time.Time{}, err
	}

	e := model.TimesheetEntry{
		Date:    f.date,
		Kind:    kind,
		Comment: f.comment,
	}
	if e.Date == "" {
		e.Date = now.Format(timecalc.DateLayout)
	}
	day, ok := billing.ParseDate(e.Date)
	if !ok {
		return model.TimesheetEntry{}, time.Time{}, fmt.Errorf("invalid --date value %q", f.date)
	}

	fs := cmd.Flags()
	if fs.Changed("start") {
		e.StartTime = model.Clock(f.start)
	}
	if fs.Changed("end") {
		e.EndTime = model.Clock(f.end)
	}
	if fs.Changed("open") {
		e.OpenReading = model.Clock(f.openReading)
	}
	if fs.Changed("close") {
		e.CloseReading = model.Clock(f.closeReading)
	}
	if fs.Changed("total") {
		total := f.total
		e.TotalHours = &total
	}
	f.applyConditions(&e)
	return e, day, nil
}

func (f *entryFlags) applyConditions(e *model.TimesheetEntry) {
	e.IsBreakdown = e.IsBreakdown || f.breakdown
	e.IsRainDay = e.IsRainDay || f.rain
	e.IsInclementWeather = e.IsInclementWeather || f.inclement
	e.IsPublicHoliday = e.IsPublicHoliday || f.holiday
}

func parseKind(s string) (model.Kind, error) {
	switch k := model.Kind(s); k {
	case model.KindPlant, model.KindOperator, model.KindSubcontract:
		return k, nil
	default:
		return "", fmt.Errorf("invalid --kind %q (want plant, operator or subcontract)", s)
	}
}
