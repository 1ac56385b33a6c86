package db

import (
	"context"
	"fmt"
	"time"

	"tourboard/internal/dateutil"
	"tourboard/internal/schedule"
)

// Seed populates an empty database with a small sample project: three
// groups over three days sharing a handful of locations, including one
// deliberate double booking so conflict highlighting has something to
// show. Returns an error if the database already contains groups.
func (s *SQLite) Seed(ctx context.Context, firstDay time.Time) error {
	existing, err := s.ListGroups(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("database already seeded (%d groups)", len(existing))
	}

	firstDay = dateutil.TruncateToDay(firstDay)
	day2 := firstDay.AddDate(0, 0, 1)
	day3 := firstDay.AddDate(0, 0, 2)

	groups := []*schedule.Group{
		{Name: "Red group"},
		{Name: "Blue group"},
		{Name: "Green group"},
	}
	for _, g := range groups {
		if err := s.CreateGroup(ctx, g); err != nil {
			return err
		}
	}
	red, blue, green := groups[0].ID, groups[1].ID, groups[2].ID

	type seedEntry struct {
		group      int64
		day        time.Time
		start, end string
		location   string
		desc       string
	}

	entries := []seedEntry{
		{red, firstDay, "09:00", "10:30", "Science Museum", "Guided exhibition"},
		{red, firstDay, "14:00", "16:00", "Old Town", "Walking tour"},
		{blue, firstDay, "09:00", "10:30", "Science Museum", "Guided exhibition"}, // conflicts with red
		{blue, firstDay, "15:00", "17:00", "Harbor", "Boat trip"},
		{green, firstDay, "10:00", "12:00", "Castle", "Castle visit"},
		{red, day2, "08:30", "11:00", "Castle", "Castle visit"},
		{blue, day2, "13:00", "15:00", "Old Town", "Walking tour"},
		{green, day2, "09:00", "10:30", "Science Museum", "Guided exhibition"},
		{red, day3, "", "", "", "Departure day, time TBD"},
		{blue, day3, "09:30", "11:00", "Harbor", "Boat trip"},
	}

	for _, se := range entries {
		e, err := schedule.NewEntry(se.group, se.desc, dateutil.DayKey(se.day), se.start, se.end, se.location)
		if err != nil {
			return fmt.Errorf("seeding entry %q: %w", se.desc, err)
		}
		if err := s.CreateEntry(ctx, e); err != nil {
			return err
		}
	}

	cards := []*schedule.DailyCard{
		{GroupID: red, Date: firstDay, Breakfast: "Hotel Aurora", Lunch: "Market hall", Dinner: "Harbor grill", Lodging: "Hotel Aurora"},
		{GroupID: blue, Date: firstDay, Breakfast: "Hostel Nord", Lunch: "Trattoria Roma", Lodging: "Hostel Nord"},
		{GroupID: green, Date: firstDay, Lunch: "Market hall", Lodging: "Hotel Aurora"},
		{GroupID: red, Date: day2, Breakfast: "Hotel Aurora", Dinner: "Old Town cellar", Lodging: "Hotel Aurora"},
		{GroupID: blue, Date: day2, Breakfast: "Hostel Nord", Lodging: "Hostel Nord"},
	}

	for _, card := range cards {
		if err := s.PutDailyCard(ctx, card); err != nil {
			return err
		}
	}

	return nil
}
