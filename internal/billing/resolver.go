package billing

import (
	"fmt"
	"math"

	"github.com/Tiliavir/billable-hours/internal/model"
)

type tier int

const (
	tierBreakdown tier = iota
	tierWeather
	tierStandard
)

// ladder is evaluated in order; the first tier that fires is final.
var ladder = [...]tier{tierBreakdown, tierWeather, tierStandard}

// Resolve computes the billable hours of e under cfg.
//
// A session with no recorded duration is invalid regardless of its flags.
// A breakdown is billed at the recorded hours when the site bills
// breakdowns; when it does not, the flag has no effect. Weather flags apply
// the rain-day minimum only when the site enables it. Everything else is
// billed at no less than the minimum for its day type.
func Resolve(e model.TimesheetEntry, cfg model.BillingConfig) model.BillableHoursResult {
	actual := NormalizeDuration(e)
	if actual == 0 {
		return model.BillableHoursResult{
			AppliedRule: model.RuleInvalid,
			Notes:       "No time recorded: start and end are missing, unreadable or out of order; nothing is billed.",
		}
	}

	for _, t := range ladder {
		if res, ok := t.resolve(e, cfg, actual); ok {
			return res
		}
	}
	return standardDay(e, cfg, actual)
}

func (t tier) resolve(e model.TimesheetEntry, cfg model.BillingConfig, actual float64) (model.BillableHoursResult, bool) {
	switch t {
	case tierBreakdown:
		if !e.IsBreakdown || !cfg.BreakdownRuleEnabled {
			return model.BillableHoursResult{}, false
		}
		return model.BillableHoursResult{
			ActualHours:   actual,
			BillableHours: actual,
			AppliedRule:   model.RuleBreakdown,
			Notes:         fmt.Sprintf("Breakdown: billed the %s recorded; no minimum applies.", hours(actual)),
		}, true

	case tierWeather:
		if !e.WeatherAffected() || !cfg.RainDayEnabled {
			return model.BillableHoursResult{}, false
		}
		minimum := cfg.RainDayMinimumHours
		return model.BillableHoursResult{
			ActualHours:    actual,
			BillableHours:  math.Max(actual, minimum),
			AppliedRule:    model.RuleRainDay,
			MinimumApplied: minimum,
			Notes:          floorNote("Rain day", actual, minimum),
		}, true

	default:
		return standardDay(e, cfg, actual), true
	}
}

func standardDay(e model.TimesheetEntry, cfg model.BillingConfig, actual float64) model.BillableHoursResult {
	day := ClassifyDay(e.Date, e.IsPublicHoliday, cfg)
	notes := floorNote(day.Type.label(), actual, day.MinimumHours)
	if !day.Parsed {
		notes += fmt.Sprintf(" Date %q could not be read; treated as a weekday.", e.Date)
	}
	if e.IsBreakdown {
		notes += " Breakdown reported, but the site does not bill breakdowns separately."
	}
	if e.WeatherAffected() {
		notes += " Rain day reported, but rain-day billing is disabled for the site."
	}
	return model.BillableHoursResult{
		ActualHours:    actual,
		BillableHours:  math.Max(actual, day.MinimumHours),
		AppliedRule:    day.Type.Rule(),
		MinimumApplied: day.MinimumHours,
		Notes:          notes,
	}
}

func floorNote(label string, actual, minimum float64) string {
	if actual >= minimum {
		return fmt.Sprintf("%s: %s recorded meets the %s minimum; billed as recorded.",
			label, hours(actual), hours(minimum))
	}
	return fmt.Sprintf("%s: %s recorded is below the %s minimum; billed the minimum.",
		label, hours(actual), hours(minimum))
}

func hours(h float64) string {
	return fmt.Sprintf("%.2fh", h)
}
