package model

import "time"

// Record is a persisted timesheet entry together with its resolved result.
// Result is nil while a clocked session is still open.
type Record struct {
	Entry       TimesheetEntry       `json:"entry"`
	Result      *BillableHoursResult `json:"result"`
	SubmittedAt *time.Time           `json:"submitted_at"`
	Source      string               `json:"source"`
}

// Open reports whether the record is a started session without a result.
func (r Record) Open() bool { return r.Result == nil }

// DayFile is the top-level structure stored in each daily JSON file.
type DayFile struct {
	Date    string   `json:"date"`
	Records []Record `json:"records"`
}
