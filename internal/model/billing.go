package model

// BillingConfig is a site's billing configuration. Minimums are in decimal
// hours and are expected to be non-negative; nothing clamps them.
type BillingConfig struct {
	WeekdayMinimumHours       float64 `yaml:"weekday_minimum_hours" json:"weekdayMinimumHours"`
	SaturdayMinimumHours      float64 `yaml:"saturday_minimum_hours" json:"saturdayMinimumHours"`
	SundayMinimumHours        float64 `yaml:"sunday_minimum_hours" json:"sundayMinimumHours"`
	PublicHolidayMinimumHours float64 `yaml:"public_holiday_minimum_hours" json:"publicHolidayMinimumHours"`
	RainDayEnabled            bool    `yaml:"rain_day_enabled" json:"rainDayEnabled"`
	RainDayMinimumHours       float64 `yaml:"rain_day_minimum_hours" json:"rainDayMinimumHours"`
	BreakdownRuleEnabled      bool    `yaml:"breakdown_rule_enabled" json:"breakdownRuleEnabled"`
}

// Rule names the billing rule that produced a result.
type Rule string

const (
	RuleBreakdown     Rule = "breakdown"
	RuleRainDay       Rule = "rain_day"
	RuleWeekday       Rule = "weekday"
	RuleSaturday      Rule = "saturday"
	RuleSunday        Rule = "sunday"
	RulePublicHoliday Rule = "public_holiday"
	RuleInvalid       Rule = "invalid"
)

// Rules lists every rule in ladder order, invalid last.
var Rules = []Rule{
	RuleBreakdown,
	RuleRainDay,
	RulePublicHoliday,
	RuleSaturday,
	RuleSunday,
	RuleWeekday,
	RuleInvalid,
}

// BillableHoursResult is the outcome of resolving one entry.
type BillableHoursResult struct {
	ActualHours    float64 `json:"actualHours"`
	BillableHours  float64 `json:"billableHours"`
	AppliedRule    Rule    `json:"appliedRule"`
	MinimumApplied float64 `json:"minimumApplied"`
	Notes          string  `json:"notes"`
}
