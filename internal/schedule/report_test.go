package schedule

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDayReport(t *testing.T) {
	day := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)

	entries := []*Entry{
		makeEntry(1, 1, day, "09:00", "10:30", "Science Museum"),
		makeEntry(2, 2, day, "09:00", "10:30", "Science Museum"),
		makeEntry(3, 3, day, "", "", ""),
	}
	entries[2].Description = "Departure day, time TBD"
	ix := BuildIndex(entries, testGroups)

	cards := map[int64]*DailyCard{
		1: {GroupID: 1, Date: day, Breakfast: "Hotel buffet"},
	}

	report := FormatDayReport(ix, day, cards)

	for _, want := range []string{
		"Itinerary for Tuesday, 14 Jul 2026",
		"Red group",
		"Blue group",
		"Green group",
		"07:00  Hotel buffet",
		"09:00-10:30",
		"[double booked with Blue group]",
		"[double booked with Red group]",
		"--:--  Departure day, time TBD",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\n%s", want, report)
		}
	}
}

func TestFormatDayReportGroupFilter(t *testing.T) {
	day := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)
	entries := []*Entry{
		makeEntry(1, 1, day, "09:00", "10:30", "Science Museum"),
		makeEntry(2, 2, day, "09:00", "10:30", "Science Museum"),
	}
	ix := BuildIndex(entries, testGroups)

	report := FormatDayReport(ix, day, nil, 2)

	if strings.Contains(report, "Red group\n") {
		t.Errorf("filtered report includes Red group section:\n%s", report)
	}
	if !strings.Contains(report, "Blue group\n") {
		t.Errorf("filtered report missing Blue group:\n%s", report)
	}
	// The other group still shows up inside the conflict annotation.
	if !strings.Contains(report, "[double booked with Red group]") {
		t.Errorf("conflict annotation lost under filter:\n%s", report)
	}
}

func TestFormatDayReportEmptyDay(t *testing.T) {
	day := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
	ix := BuildIndex(nil, testGroups)

	report := FormatDayReport(ix, day, nil)
	if got := strings.Count(report, "(no events)"); got != 3 {
		t.Errorf("(no events) count = %d, want one per group\n%s", got, report)
	}
}
