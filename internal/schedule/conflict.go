package schedule

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"tourboard/internal/dateutil"
)

// Conflicts returns the distinct ids of other groups holding an entry at
// the identical (date, location, start) tuple. An empty location or start
// can never conflict and yields nil.
//
// Two bookings conflict only on byte-identical start times; windows that
// overlap but start at different minutes are not flagged. Kept as-is for
// compatibility with existing operator expectations, pending product
// review.
func (ix *Index) Conflicts(date time.Time, location, start string, excludeGroup int64) []int64 {
	if location == "" || start == "" {
		return nil
	}

	sk := SlotKey{Day: dateutil.DayKey(date), Location: location, Start: start}

	var groups []int64
	for _, e := range ix.bySlot[sk] {
		if e.GroupID == excludeGroup {
			continue
		}
		if !slices.Contains(groups, e.GroupID) {
			groups = append(groups, e.GroupID)
		}
	}
	slices.Sort(groups)
	return groups
}

// EntryConflicts returns the conflict set for an existing entry.
func (ix *Index) EntryConflicts(e *Entry) []int64 {
	if e == nil || !e.IsScheduled() {
		return nil
	}
	return ix.Conflicts(e.Date, e.Location, e.Start, e.GroupID)
}

// ConflictNames resolves a conflict set to group display names, in the
// same order. Unknown ids fall back to "group <id>"-style placeholders.
func (ix *Index) ConflictNames(groupIDs []int64) []string {
	names := make([]string, 0, len(groupIDs))
	for _, id := range groupIDs {
		name := ix.GroupName(id)
		if name == "" {
			name = "group " + strconv.FormatInt(id, 10)
		}
		names = append(names, name)
	}
	return names
}

// JoinConflictNames renders a conflict set as one human-readable list.
func JoinConflictNames(names []string) string {
	return strings.Join(names, ", ")
}
