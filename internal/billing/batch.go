package billing

import "github.com/Tiliavir/billable-hours/internal/model"

// Totals sums actual and billable hours over a set of results.
type Totals struct {
	TotalActualHours   float64 `json:"totalActualHours"`
	TotalBillableHours float64 `json:"totalBillableHours"`
}

// ResolveAll resolves every entry under cfg, preserving order. Entries are
// independent of one another.
func ResolveAll(entries []model.TimesheetEntry, cfg model.BillingConfig) []model.BillableHoursResult {
	results := make([]model.BillableHoursResult, len(entries))
	for i, e := range entries {
		results[i] = Resolve(e, cfg)
	}
	return results
}

// Total adds up the hours of results. An empty slice gives zero totals.
func Total(results []model.BillableHoursResult) Totals {
	var t Totals
	for _, r := range results {
		t.TotalActualHours += r.ActualHours
		t.TotalBillableHours += r.BillableHours
	}
	return t
}
