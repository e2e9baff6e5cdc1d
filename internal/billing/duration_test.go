package billing_test

import (
	"math"
	"testing"

	"github.com/Tiliavir/billable-hours/internal/billing"
	"github.com/Tiliavir/billable-hours/internal/model"
)

func ptr(f float64) *float64 { return &f }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestParseTimeValue(t *testing.T) {
	tests := []struct {
		name   string
		in     model.TimeValue
		want   float64
		wantOK bool
	}{
		{"absent", model.TimeValue{}, 0, false},
		{"number", model.Hours(7.25), 7.25, true},
		{"clock", model.Clock("08:30"), 8.5, true},
		{"clock padded", model.Clock("  14:15 "), 14.25, true},
		{"clock single digit hour", model.Clock("7:45"), 7.75, true},
		{"decimal string", model.Clock("6.5"), 6.5, true},
		{"empty", model.Clock(""), 0, true},
		{"blank", model.Clock("   "), 0, true},
		{"midnight literal", model.Clock("00:00"), 0, true},
		{"garbage", model.Clock("eight"), 0, false},
		{"seconds", model.Clock("08:00:00"), 0, false},
		{"bad minute", model.Clock("08:xx"), 0, false},
		{"nan text", model.Clock("NaN"), 0, false},
		{"inf number", model.Hours(math.Inf(1)), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := billing.ParseTimeValue(tt.in)
			if !approx(got, tt.want) || ok != tt.wantOK {
				t.Errorf("ParseTimeValue(%q) = (%v, %v), want (%v, %v)", tt.in.String(), got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeDuration(t *testing.T) {
	tests := []struct {
		name  string
		entry model.TimesheetEntry
		want  float64
	}{
		{
			name:  "clock strings",
			entry: model.TimesheetEntry{StartTime: model.Clock("08:00"), EndTime: model.Clock("14:00")},
			want:  6,
		},
		{
			name:  "decimal hours",
			entry: model.TimesheetEntry{StartTime: model.Hours(7.5), EndTime: model.Hours(16)},
			want:  8.5,
		},
		{
			name:  "mixed representations",
			entry: model.TimesheetEntry{StartTime: model.Clock("07:30"), EndTime: model.Hours(12)},
			want:  4.5,
		},
		{
			name: "total hours wins",
			entry: model.TimesheetEntry{
				StartTime:  model.Clock("08:00"),
				EndTime:    model.Clock("09:00"),
				TotalHours: ptr(6),
			},
			want: 6,
		},
		{
			name: "zero total falls back to times",
			entry: model.TimesheetEntry{
				StartTime:  model.Clock("08:00"),
				EndTime:    model.Clock("09:00"),
				TotalHours: ptr(0),
			},
			want: 1,
		},
		{
			name: "negative total falls back to times",
			entry: model.TimesheetEntry{
				StartTime:  model.Clock("08:00"),
				EndTime:    model.Clock("10:00"),
				TotalHours: ptr(-3),
			},
			want: 2,
		},
		{
			name:  "end before start is not wrapped",
			entry: model.TimesheetEntry{StartTime: model.Clock("22:00"), EndTime: model.Clock("06:00")},
			want:  0,
		},
		{
			name:  "empty strings",
			entry: model.TimesheetEntry{StartTime: model.Clock(""), EndTime: model.Clock("")},
			want:  0,
		},
		{
			name:  "nothing supplied",
			entry: model.TimesheetEntry{},
			want:  0,
		},
		{
			name:  "unreadable start counts as zero",
			entry: model.TimesheetEntry{StartTime: model.Clock("soon"), EndTime: model.Clock("05:00")},
			want:  5,
		},
		{
			name:  "meter readings stand in for absent times",
			entry: model.TimesheetEntry{OpenReading: model.Hours(1203.5), CloseReading: model.Hours(1210)},
			want:  6.5,
		},
		{
			name: "primary field shadows alias",
			entry: model.TimesheetEntry{
				StartTime:    model.Clock("08:00"),
				EndTime:      model.Clock("10:00"),
				OpenReading:  model.Hours(100),
				CloseReading: model.Hours(200),
			},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.NormalizeDuration(tt.entry)
			if !approx(got, tt.want) {
				t.Errorf("NormalizeDuration = %v, want %v", got, tt.want)
			}
		})
	}
}
