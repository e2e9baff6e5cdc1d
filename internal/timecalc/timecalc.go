package timecalc

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the layout used for session dates and day-file keys.
const DateLayout = "2006-01-02"

// FormatHours formats decimal hours with two places, e.g. "4.50".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

// FormatHoursMinutes formats decimal hours as "6h 30m" or "45m", rounded to
// the nearest minute.
func FormatHoursMinutes(h float64) string {
	minutes := int64(math.Round(h * 60))
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	if minutes >= 60 {
		return fmt.Sprintf("%s%dh %dm", sign, minutes/60, minutes%60)
	}
	return fmt.Sprintf("%s%dm", sign, minutes)
}

// ClockOf returns the wall-clock reading of t as "HH:MM".
func ClockOf(t time.Time) string {
	return t.Format("15:04")
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := StartOfDay(t.AddDate(0, 0, -(wd - 1)))
	sunday := EndOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
