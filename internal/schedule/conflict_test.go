package schedule

import (
	"slices"
	"testing"
	"time"
)

func TestConflicts(t *testing.T) {
	oct15 := time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)
	oct16 := oct15.AddDate(0, 0, 1)

	entries := []*Entry{
		makeEntry(1, 1, oct15, "09:00", "10:30", "Science Museum"),
		makeEntry(2, 2, oct15, "09:00", "11:00", "Science Museum"),
		makeEntry(3, 3, oct15, "09:30", "10:30", "Science Museum"),
		makeEntry(4, 1, oct15, "14:00", "15:00", "Harbor"),
		makeEntry(5, 2, oct16, "09:00", "10:30", "Science Museum"),
		makeEntry(6, 3, oct15, "09:00", "10:00", ""),
	}
	ix := BuildIndex(entries, testGroups)

	tests := []struct {
		name         string
		date         time.Time
		location     string
		start        string
		excludeGroup int64
		want         []int64
	}{
		{
			name: "two groups same slot",
			date: oct15, location: "Science Museum", start: "09:00",
			excludeGroup: 1,
			want:         []int64{2},
		},
		{
			name: "symmetric from other side",
			date: oct15, location: "Science Museum", start: "09:00",
			excludeGroup: 2,
			want:         []int64{1},
		},
		{
			name: "overlap with different start is not a conflict",
			date: oct15, location: "Science Museum", start: "09:30",
			excludeGroup: 3,
			want:         nil,
		},
		{
			name: "different date",
			date: oct16, location: "Science Museum", start: "09:00",
			excludeGroup: 2,
			want:         nil,
		},
		{
			name: "different location",
			date: oct15, location: "Harbor", start: "14:00",
			excludeGroup: 1,
			want:         nil,
		},
		{
			name: "empty location never conflicts",
			date: oct15, location: "", start: "09:00",
			excludeGroup: 1,
			want:         nil,
		},
		{
			name: "empty start never conflicts",
			date: oct15, location: "Science Museum", start: "",
			excludeGroup: 1,
			want:         nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Conflicts(tt.date, tt.location, tt.start, tt.excludeGroup)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Conflicts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConflictsMultipleGroupsAllReported(t *testing.T) {
	oct15 := time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)

	entries := []*Entry{
		makeEntry(1, 1, oct15, "09:00", "10:00", "Museum"),
		makeEntry(2, 2, oct15, "09:00", "10:00", "Museum"),
		makeEntry(3, 3, oct15, "09:00", "11:00", "Museum"),
		// Second entry for group 2 in the same slot must not duplicate.
		makeEntry(4, 2, oct15, "09:00", "09:45", "Museum"),
	}
	ix := BuildIndex(entries, testGroups)

	got := ix.Conflicts(oct15, "Museum", "09:00", 1)
	want := []int64{2, 3}
	if !slices.Equal(got, want) {
		t.Errorf("Conflicts() = %v, want %v", got, want)
	}
}

func TestConflictsLocationIsCaseSensitive(t *testing.T) {
	oct15 := time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)

	ix := BuildIndex([]*Entry{
		makeEntry(1, 1, oct15, "09:00", "10:00", "Museum"),
		makeEntry(2, 2, oct15, "09:00", "10:00", "museum"),
	}, testGroups)

	if got := ix.Conflicts(oct15, "Museum", "09:00", 1); got != nil {
		t.Errorf("Conflicts() = %v, want nil for differently cased locations", got)
	}
}

func TestEntryConflicts(t *testing.T) {
	oct15 := time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)

	e1 := makeEntry(1, 1, oct15, "09:00", "10:30", "Science Museum")
	e2 := makeEntry(2, 2, oct15, "09:00", "11:00", "Science Museum")
	unscheduled := makeEntry(3, 3, oct15, "", "", "Science Museum")
	ix := BuildIndex([]*Entry{e1, e2, unscheduled}, testGroups)

	if got := ix.EntryConflicts(e1); !slices.Equal(got, []int64{2}) {
		t.Errorf("EntryConflicts(e1) = %v, want [2]", got)
	}
	if got := ix.EntryConflicts(unscheduled); got != nil {
		t.Errorf("EntryConflicts(unscheduled) = %v, want nil", got)
	}
	if got := ix.EntryConflicts(nil); got != nil {
		t.Errorf("EntryConflicts(nil) = %v, want nil", got)
	}
}

func TestConflictNames(t *testing.T) {
	ix := BuildIndex(nil, testGroups)

	names := ix.ConflictNames([]int64{2, 3, 42})
	want := []string{"Blue group", "Green group", "group 42"}
	if !slices.Equal(names, want) {
		t.Errorf("ConflictNames() = %v, want %v", names, want)
	}

	if got := JoinConflictNames(names); got != "Blue group, Green group, group 42" {
		t.Errorf("JoinConflictNames() = %q", got)
	}
}
