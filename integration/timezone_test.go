package integration

import (
	"context"
	"testing"
	"time"

	"tourboard/internal/dateutil"
	"tourboard/internal/schedule"
)

// Entry dates are stored as calendar dates, so an entry created late at
// night in one zone must come back on the same calendar day.
func TestEntryDateStableAcrossZones(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	group := &schedule.Group{Name: "Red group"}
	if err := repo.CreateGroup(ctx, group); err != nil {
		t.Fatalf("creating group: %v", err)
	}

	zones := []string{"UTC", "America/New_York", "Asia/Tokyo"}
	for _, name := range zones {
		t.Run(name, func(t *testing.T) {
			loc, err := time.LoadLocation(name)
			if err != nil {
				t.Skipf("zone %s unavailable: %v", name, err)
			}

			lateNight := time.Date(2026, 7, 14, 23, 45, 0, 0, loc)
			e, err := schedule.NewEntry(group.ID, "Night market", lateNight.Format("2006-01-02"), "21:00", "23:00", "Old Town")
			if err != nil {
				t.Fatalf("NewEntry: %v", err)
			}
			if err := repo.CreateEntry(ctx, e); err != nil {
				t.Fatalf("creating entry: %v", err)
			}

			day := dateutil.TruncateToDay(lateNight)
			entries, err := repo.ListEntries(ctx, day, day)
			if err != nil {
				t.Fatalf("listing entries: %v", err)
			}

			found := false
			for _, got := range entries {
				if got.ID != e.ID {
					continue
				}
				found = true
				if dateutil.DayKey(got.Date) != dateutil.DayKey(lateNight) {
					t.Errorf("stored day = %s, want %s",
						dateutil.DayKey(got.Date), dateutil.DayKey(lateNight))
				}
			}
			if !found {
				t.Errorf("entry not returned for its own calendar day")
			}
		})
	}
}
