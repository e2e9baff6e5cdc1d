package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Tiliavir/billable-hours/internal/config"
	"github.com/Tiliavir/billable-hours/internal/model"
	"github.com/Tiliavir/billable-hours/internal/storage"
)

func testAppConfig() config.Config {
	return config.Config{
		DefaultSite: "quarry",
		Sites: map[string]model.BillingConfig{
			"quarry": {
				WeekdayMinimumHours:       8,
				SaturdayMinimumHours:      5,
				SundayMinimumHours:        6,
				PublicHolidayMinimumHours: 10,
				RainDayEnabled:            true,
				RainDayMinimumHours:       4.5,
				BreakdownRuleEnabled:      true,
			},
			"depot": {WeekdayMinimumHours: 4},
		},
	}
}

func TestSubmitEntryStoresResult(t *testing.T) {
	base := t.TempDir()
	cfg := testAppConfig()
	bc, _ := cfg.Site("quarry")
	day := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	total := 4.0

	rec, err := submitEntry(base, model.TimesheetEntry{
		Date:       "2024-01-16",
		Site:       "quarry",
		Resource:   "EX-12",
		TotalHours: &total,
	}, day, bc, time.Now(), "manual")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Entry.ID == "" {
		t.Error("submitEntry did not assign an ID")
	}
	if rec.Result.AppliedRule != model.RuleWeekday || rec.Result.BillableHours != 8 {
		t.Errorf("result = %+v", rec.Result)
	}

	df, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatal(err)
	}
	if len(df.Records) != 1 || df.Records[0].Entry.ID != rec.Entry.ID {
		t.Fatalf("stored records = %+v", df.Records)
	}
}

func TestStartStopSession(t *testing.T) {
	base := t.TempDir()
	appCfg = testAppConfig()
	t.Cleanup(func() { appCfg = config.Config{} })

	in := time.Date(2024, 1, 20, 7, 0, 0, 0, time.UTC)
	rec := startSession("EX-12", model.KindPlant, "quarry", "", in)
	if !rec.Open() || rec.Entry.StartTime.String() != "07:00" {
		t.Fatalf("started record = %+v", rec)
	}
	if err := storage.UpsertRecord(base, in, rec); err != nil {
		t.Fatal(err)
	}

	out := in.Add(3 * time.Hour)
	open, openDay, err := storage.FindOpenRecord(base, out)
	if err != nil || open == nil {
		t.Fatalf("FindOpenRecord = %v, %v", open, err)
	}
	closed, err := stopSession(base, *open, openDay, out, entryFlags{rain: true, comment: "wet pit"})
	if err != nil {
		t.Fatal(err)
	}
	if closed.Entry.EndTime.String() != "10:00" || closed.Entry.Comment != "wet pit" {
		t.Errorf("closed entry = %+v", closed.Entry)
	}
	if closed.Result.AppliedRule != model.RuleRainDay || closed.Result.ActualHours != 3 || closed.Result.BillableHours != 4.5 {
		t.Errorf("result = %+v", closed.Result)
	}

	again, _, err := storage.FindOpenRecord(base, out)
	if err != nil {
		t.Fatal(err)
	}
	if again != nil {
		t.Errorf("session still open after stop: %+v", again)
	}
}

func TestStopSessionAcrossMidnightIsInvalid(t *testing.T) {
	base := t.TempDir()
	appCfg = testAppConfig()
	t.Cleanup(func() { appCfg = config.Config{} })

	in := time.Date(2024, 1, 16, 22, 0, 0, 0, time.UTC)
	rec := startSession("night crew", model.KindSubcontract, "quarry", "", in)
	out := time.Date(2024, 1, 17, 6, 0, 0, 0, time.UTC)

	closed, err := stopSession(base, rec, in, out, entryFlags{})
	if err != nil {
		t.Fatal(err)
	}
	if closed.Result.AppliedRule != model.RuleInvalid || closed.Result.BillableHours != 0 {
		t.Errorf("result = %+v, want invalid", closed.Result)
	}
}

func TestBuildReport(t *testing.T) {
	total := func(h float64) *float64 { return &h }
	records := []model.Record{
		{Entry: model.TimesheetEntry{ID: "1", Site: "quarry", Date: "2024-01-16", TotalHours: total(6), IsBreakdown: true}, Result: &model.BillableHoursResult{}},
		{Entry: model.TimesheetEntry{ID: "2", Site: "quarry", Date: "2024-01-16", TotalHours: total(4)}, Result: &model.BillableHoursResult{}},
		{Entry: model.TimesheetEntry{ID: "3", Date: "2024-01-16", TotalHours: total(2), IsRainDay: true}, Result: &model.BillableHoursResult{}},
		{Entry: model.TimesheetEntry{ID: "4", Site: "depot", Date: "2024-01-16", TotalHours: total(1)}, Result: &model.BillableHoursResult{}},
		{Entry: model.TimesheetEntry{ID: "5", Site: "quarry", Date: "2024-01-16", StartTime: model.Clock(""), EndTime: model.Clock("")}, Result: &model.BillableHoursResult{}},
		{Entry: model.TimesheetEntry{ID: "6", Site: "quarry", Date: "2024-01-16", StartTime: model.Clock("07:00")}},
		{Entry: model.TimesheetEntry{ID: "7", Site: "gone", Date: "2024-01-16", TotalHours: total(3)}, Result: &model.BillableHoursResult{}},
	}

	rep := buildReport("2024-W03", records, testAppConfig())

	if rep.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", rep.Skipped)
	}
	want := map[model.Rule]struct {
		entries          int
		actual, billable float64
	}{
		model.RuleBreakdown: {1, 6, 6},
		model.RuleRainDay:   {1, 2, 4.5},
		model.RuleWeekday:   {2, 5, 12},
		model.RuleInvalid:   {1, 0, 0},
	}
	if len(rep.Rules) != len(want) {
		t.Fatalf("Rules = %+v", rep.Rules)
	}
	for _, rt := range rep.Rules {
		w, ok := want[rt.Rule]
		if !ok || rt.Entries != w.entries || rt.TotalActualHours != w.actual || rt.TotalBillableHours != w.billable {
			t.Errorf("rule %s = %+v, want %+v", rt.Rule, rt, w)
		}
	}
	if rep.Rules[0].Rule != model.RuleBreakdown || rep.Rules[len(rep.Rules)-1].Rule != model.RuleInvalid {
		t.Errorf("rule order = %+v", rep.Rules)
	}
	if rep.Total.TotalActualHours != 13 || rep.Total.TotalBillableHours != 22.5 {
		t.Errorf("Total = %+v", rep.Total)
	}

	var buf bytes.Buffer
	printReportTable(&buf, rep)
	if !strings.Contains(buf.String(), "22.50") || !strings.Contains(buf.String(), "2 open or unresolvable") {
		t.Errorf("table output:\n%s", buf.String())
	}
}

func TestBuildReportEmpty(t *testing.T) {
	rep := buildReport("2024-W03", nil, testAppConfig())
	if len(rep.Rules) != 0 || rep.Total.TotalActualHours != 0 || rep.Total.TotalBillableHours != 0 {
		t.Errorf("empty report = %+v", rep)
	}
}

func TestPrintSitesShowsWarnings(t *testing.T) {
	cfg := testAppConfig()
	bc := cfg.Sites["depot"]
	bc.SundayMinimumHours = -1
	cfg.Sites["depot"] = bc

	var buf bytes.Buffer
	printSites(&buf, cfg)
	out := buf.String()
	if !strings.Contains(out, "quarry (default)") {
		t.Errorf("missing default marker:\n%s", out)
	}
	if !strings.Contains(out, "sunday_minimum_hours is negative") {
		t.Errorf("missing warning:\n%s", out)
	}
}
