package schedule

import (
	"slices"
	"time"

	"tourboard/internal/dateutil"
)

// GroupDayKey addresses all entries for one group on one calendar day.
type GroupDayKey struct {
	GroupID int64
	Day     string // "2006-01-02"
}

// SlotKey addresses all entries sharing a location at an identical start
// time on one calendar day, across groups. This is the conflict bucket.
type SlotKey struct {
	Day      string
	Location string
	Start    string
}

// Index is a read-only view over a complete entry snapshot. It is rebuilt
// in full on every data refresh and passed by value reference to consumers
// for the lifetime of one render pass.
type Index struct {
	entries  []*Entry
	byDay    map[GroupDayKey][]*Entry
	bySlot   map[SlotKey][]*Entry
	groups   map[int64]Group
	grpOrder []Group
}

// BuildIndex constructs an Index from a complete snapshot of entries and
// groups. Entry slices preserve snapshot order, which keeps rendering and
// composition reproducible.
func BuildIndex(entries []*Entry, groups []Group) *Index {
	ix := &Index{
		entries: entries,
		byDay:   make(map[GroupDayKey][]*Entry),
		bySlot:  make(map[SlotKey][]*Entry),
		groups:  make(map[int64]Group, len(groups)),
	}

	for _, g := range groups {
		ix.groups[g.ID] = g
		ix.grpOrder = append(ix.grpOrder, g)
	}

	for _, e := range entries {
		if e == nil {
			continue
		}

		dk := GroupDayKey{GroupID: e.GroupID, Day: e.DayKey()}
		ix.byDay[dk] = append(ix.byDay[dk], e)

		// Unscheduled entries and entries without a location can never
		// conflict, so they stay out of the slot buckets.
		if !e.IsScheduled() || !e.HasLocation() {
			continue
		}
		sk := SlotKey{Day: e.DayKey(), Location: e.Location, Start: e.Start}
		ix.bySlot[sk] = append(ix.bySlot[sk], e)
	}

	return ix
}

// EntriesFor returns the entries for a group on a date, in snapshot order.
func (ix *Index) EntriesFor(groupID int64, date time.Time) []*Entry {
	return ix.byDay[GroupDayKey{GroupID: groupID, Day: dateutil.DayKey(date)}]
}

// Entries returns the full snapshot the index was built from.
func (ix *Index) Entries() []*Entry {
	return ix.entries
}

// EntryByID returns the entry with the given id, or nil.
func (ix *Index) EntryByID(id int64) *Entry {
	for _, e := range ix.entries {
		if e != nil && e.ID == id {
			return e
		}
	}
	return nil
}

// Groups returns all groups in snapshot order.
func (ix *Index) Groups() []Group {
	return ix.grpOrder
}

// GroupName returns the display name for a group id, or "" if unknown.
func (ix *Index) GroupName(id int64) string {
	return ix.groups[id].Name
}

// Days returns the distinct day keys present in the snapshot, sorted.
func (ix *Index) Days() []string {
	seen := make(map[string]bool)
	var days []string
	for _, e := range ix.entries {
		if e == nil {
			continue
		}
		dk := e.DayKey()
		if !seen[dk] {
			seen[dk] = true
			days = append(days, dk)
		}
	}
	slices.Sort(days)
	return days
}
