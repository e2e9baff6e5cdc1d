package billing

import (
	"math"
	"strconv"
	"strings"

	"github.com/Tiliavir/billable-hours/internal/model"
)

// NormalizeDuration returns the recorded duration of e in decimal hours.
//
// A positive TotalHours is returned unchanged. Otherwise the start and end
// readings are parsed (falling back to OpenReading/CloseReading when a
// primary field is absent) and their difference is returned. The interval
// never wraps past midnight: an end before the start yields 0.
func NormalizeDuration(e model.TimesheetEntry) float64 {
	if e.TotalHours != nil && *e.TotalHours > 0 && !math.IsInf(*e.TotalHours, 1) {
		return *e.TotalHours
	}

	start := reading(e.StartTime, e.OpenReading)
	end := reading(e.EndTime, e.CloseReading)

	// Both sides zero is the "no time entered" case; the difference is 0 too.
	d := end - start
	if d < 0 {
		return 0
	}
	return d
}

// reading parses primary, or alias when primary was not supplied. Anything
// unreadable counts as 0 for that side only.
func reading(primary, alias model.TimeValue) float64 {
	v := primary
	if v.IsZero() {
		v = alias
	}
	h, _ := ParseTimeValue(v)
	return h
}

// ParseTimeValue reads v as decimal hours. Numbers are taken as-is. Strings
// are trimmed and parsed first as a decimal number, then as "HH:MM". ok is
// false when v is absent or unreadable; the hours are then 0.
func ParseTimeValue(v model.TimeValue) (hours float64, ok bool) {
	if v.IsZero() {
		return 0, false
	}
	if h, isNum := v.Number(); isNum {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return 0, false
		}
		return h, true
	}
	return parseClock(v.Text())
}

func parseClock(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "00:00" {
		return 0, true
	}

	if h, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return 0, false
		}
		return h, true
	}

	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	return float64(hour) + float64(minute)/60, true
}
