package schedule

import (
	"fmt"
	"strings"
	"time"
)

// FormatDayReport renders one date across all groups as plain text,
// suitable for the clipboard or stdout. Cards are keyed by group id.
// Passing group ids narrows the report to those groups.
func FormatDayReport(ix *Index, date time.Time, cards map[int64]*DailyCard, only ...int64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Itinerary for %s\n", date.Format("Monday, 2 Jan 2006"))

	for _, g := range ix.Groups() {
		if len(only) != 0 && !containsID(only, g.ID) {
			continue
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s\n", g.Name)

		items := ComposeDay(g.ID, date, ix, cards[g.ID])
		if len(items) == 0 {
			b.WriteString("  (no events)\n")
			continue
		}

		for _, it := range items {
			fmt.Fprintf(&b, "  %s  %s%s\n", reportTime(it), it.Label, reportConflict(ix, it.Entry))
		}
	}

	return b.String()
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func reportTime(it TimelineItem) string {
	if it.Entry != nil && it.Entry.IsScheduled() {
		return it.Entry.Start + "-" + it.Entry.End
	}
	if it.Time == "" {
		return "--:--"
	}
	return it.Time
}

func reportConflict(ix *Index, e *Entry) string {
	if e == nil {
		return ""
	}
	conflicts := ix.EntryConflicts(e)
	if len(conflicts) == 0 {
		return ""
	}
	return fmt.Sprintf("  [double booked with %s]", JoinConflictNames(ix.ConflictNames(conflicts)))
}
