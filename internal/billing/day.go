package billing

import (
	"strings"
	"time"

	"github.com/Tiliavir/billable-hours/internal/model"
)

// DayType is the day classification used to pick a minimum-hour threshold.
type DayType int

const (
	Weekday DayType = iota
	Saturday
	Sunday
	PublicHoliday
)

// Rule returns the rule name reported when this day type's minimum applies.
func (d DayType) Rule() model.Rule {
	switch d {
	case Saturday:
		return model.RuleSaturday
	case Sunday:
		return model.RuleSunday
	case PublicHoliday:
		return model.RulePublicHoliday
	default:
		return model.RuleWeekday
	}
}

func (d DayType) String() string { return string(d.Rule()) }

// Minimum returns the configured minimum hours for d.
func (d DayType) Minimum(cfg model.BillingConfig) float64 {
	switch d {
	case Saturday:
		return cfg.SaturdayMinimumHours
	case Sunday:
		return cfg.SundayMinimumHours
	case PublicHoliday:
		return cfg.PublicHolidayMinimumHours
	default:
		return cfg.WeekdayMinimumHours
	}
}

func (d DayType) label() string {
	switch d {
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	case PublicHoliday:
		return "Public holiday"
	default:
		return "Weekday"
	}
}

// DayClass is the result of classifying a session date.
type DayClass struct {
	Weekday      time.Weekday
	Type         DayType
	MinimumHours float64
	// Parsed is false when the date could not be read and the classifier
	// fell back to a weekday.
	Parsed bool
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// ParseDate parses a session date in any of the accepted layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ClassifyDay derives the day type of date. The public holiday flag wins,
// then Saturday, then Sunday; everything else is a weekday. An unreadable
// date is classified as a Monday.
func ClassifyDay(date string, isPublicHoliday bool, cfg model.BillingConfig) DayClass {
	dc := DayClass{Weekday: time.Monday}
	if t, ok := ParseDate(date); ok {
		dc.Weekday = t.Weekday()
		dc.Parsed = true
	}

	switch {
	case isPublicHoliday:
		dc.Type = PublicHoliday
	case dc.Weekday == time.Saturday:
		dc.Type = Saturday
	case dc.Weekday == time.Sunday:
		dc.Type = Sunday
	default:
		dc.Type = Weekday
	}
	dc.MinimumHours = dc.Type.Minimum(cfg)
	return dc
}
