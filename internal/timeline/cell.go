package timeline

import "tourboard/internal/schedule"

// Cell is the pure per-entry render datum handed to the rendering
// surface. Vertical placement only; the caller owns which date column and
// group row the cell lands in.
type Cell struct {
	EntryID        int64
	Top            float64
	Height         float64
	Label          string
	Start          string
	End            string
	ConflictGroups []string
}

// HasConflict reports whether any other group shares this cell's slot.
func (c Cell) HasConflict() bool {
	return len(c.ConflictGroups) > 0
}

// BuildCell computes the render cell for a scheduled entry against an
// axis, annotated with the names of conflicting groups from the index.
// Returns false for unscheduled entries, which have no timeline position.
func BuildCell(e *schedule.Entry, a Axis, ix *schedule.Index) (Cell, bool) {
	if e == nil || !e.IsScheduled() {
		return Cell{}, false
	}

	start := ParseClock(e.Start)
	end := ParseClock(e.End)

	return Cell{
		EntryID:        e.ID,
		Top:            a.TimeToY(start),
		Height:         (end - start) * a.PixelsPerHour,
		Label:          e.Label(),
		Start:          e.Start,
		End:            e.End,
		ConflictGroups: ix.ConflictNames(ix.EntryConflicts(e)),
	}, true
}

// BuildCells computes cells for the schedule entries of one composed day,
// in composed order. Ancillary items carry no cell; they render inline.
func BuildCells(ix *schedule.Index, a Axis, items []schedule.TimelineItem) []Cell {
	cells := make([]Cell, 0, len(items))
	for _, it := range items {
		if it.IsAncillary() {
			continue
		}
		if c, ok := BuildCell(it.Entry, a, ix); ok {
			cells = append(cells, c)
		}
	}
	return cells
}
