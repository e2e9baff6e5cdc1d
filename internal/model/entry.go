package model

// Kind identifies what a timesheet entry bills for.
type Kind string

const (
	KindPlant       Kind = "plant"
	KindOperator    Kind = "operator"
	KindSubcontract Kind = "subcontract"
)

// TimesheetEntry is a single work session submitted for billing evaluation.
//
// StartTime and EndTime may be clock strings ("08:30"), decimal-hour strings
// ("8.5") or numbers. OpenReading and CloseReading stand in for a side whose
// primary field is absent, e.g. an hour-meter pair on a plant asset. A
// positive TotalHours wins over all of them.
type TimesheetEntry struct {
	ID       string `json:"id,omitempty"`
	Site     string `json:"site,omitempty"`
	Kind     Kind   `json:"kind,omitempty"`
	Resource string `json:"resource,omitempty"`
	Comment  string `json:"comment,omitempty"`

	Date         string    `json:"date"`
	StartTime    TimeValue `json:"startTime,omitzero"`
	EndTime      TimeValue `json:"endTime,omitzero"`
	OpenReading  TimeValue `json:"openReading,omitzero"`
	CloseReading TimeValue `json:"closeReading,omitzero"`
	TotalHours   *float64  `json:"totalHours,omitempty"`

	IsBreakdown        bool `json:"isBreakdown,omitempty"`
	IsRainDay          bool `json:"isRainDay,omitempty"`
	IsInclementWeather bool `json:"isInclementWeather,omitempty"`
	IsPublicHoliday    bool `json:"isPublicHoliday,omitempty"`
}

// WeatherAffected reports whether either weather flag is set.
func (e TimesheetEntry) WeatherAffected() bool {
	return e.IsRainDay || e.IsInclementWeather
}
