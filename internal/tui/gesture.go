package tui

import (
	"tourboard/internal/schedule"
	"tourboard/internal/timeline"
)

// MinDurationMinutes is the resize floor. No gesture can shrink an entry
// below this.
const MinDurationMinutes = 30

const minDurationHours = float64(MinDurationMinutes) / 60

// gestureKind tags the state of an in-progress pointer edit.
type gestureKind int

const (
	gestureIdle gestureKind = iota
	gestureDrag
	gestureResizeTop
	gestureResizeBottom
)

// Edge selects which boundary a resize gesture moves.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
)

// Gesture owns the lifecycle of a single pointer-driven edit: one
// pointer-down through pointer-up. All intermediate math runs in decimal
// hours for smooth feedback; only Release rounds to whole minutes.
//
// The zero value is idle. Only one gesture can be active at a time; a
// second start while active is refused, never queued.
type Gesture struct {
	kind    gestureKind
	entryID int64
	groupID int64
	axis    timeline.Axis

	// Captured at pointer-down.
	origStart  float64
	origEnd    float64
	grabOffset float64 // pixels between pointer and entry top, drag only

	// Live preview window, updated on every pointer move.
	previewStart float64
	previewEnd   float64
}

// Active returns true while a gesture is in progress.
func (g *Gesture) Active() bool {
	return g.kind != gestureIdle
}

// EntryID returns the id of the entry being edited, or 0 when idle.
func (g *Gesture) EntryID() int64 {
	if !g.Active() {
		return 0
	}
	return g.entryID
}

// GroupID returns the owning group of the entry being edited, or 0.
func (g *Gesture) GroupID() int64 {
	if !g.Active() {
		return 0
	}
	return g.groupID
}

// StartDrag begins moving an entry's whole window. pointerY is the
// pointer offset from the axis top. Returns false if a gesture is
// already active or the entry has no timeline position.
func (g *Gesture) StartDrag(e *schedule.Entry, axis timeline.Axis, pointerY float64) bool {
	if g.Active() || e == nil || !e.IsScheduled() {
		return false
	}

	start := timeline.ParseClock(e.Start)
	end := timeline.ParseClock(e.End)

	*g = Gesture{
		kind:         gestureDrag,
		entryID:      e.ID,
		groupID:      e.GroupID,
		axis:         axis,
		origStart:    start,
		origEnd:      end,
		grabOffset:   pointerY - axis.TimeToY(start),
		previewStart: start,
		previewEnd:   end,
	}
	return true
}

// StartResize begins moving one boundary of an entry's window. Returns
// false if a gesture is already active or the entry has no timeline
// position.
func (g *Gesture) StartResize(e *schedule.Entry, axis timeline.Axis, edge Edge) bool {
	if g.Active() || e == nil || !e.IsScheduled() {
		return false
	}

	kind := gestureResizeTop
	if edge == EdgeBottom {
		kind = gestureResizeBottom
	}

	start := timeline.ParseClock(e.Start)
	end := timeline.ParseClock(e.End)

	*g = Gesture{
		kind:         kind,
		entryID:      e.ID,
		groupID:      e.GroupID,
		axis:         axis,
		origStart:    start,
		origEnd:      end,
		previewStart: start,
		previewEnd:   end,
	}
	return true
}

// Move recomputes the preview window for the current pointer position.
// The preview never touches persisted state. No-op when idle.
func (g *Gesture) Move(pointerY float64) {
	switch g.kind {
	case gestureDrag:
		duration := g.origEnd - g.origStart
		raw := g.axis.DayStart + (pointerY-g.grabOffset)/g.axis.PixelsPerHour
		g.previewStart, g.previewEnd = g.axis.ClampWindow(raw, duration)

	case gestureResizeTop:
		candidate := g.axis.YToTime(pointerY)
		limit := g.origEnd - minDurationHours
		if candidate > limit {
			candidate = limit
		}
		if candidate < g.axis.DayStart {
			candidate = g.axis.DayStart
		}
		g.previewStart = candidate

	case gestureResizeBottom:
		candidate := g.axis.YToTime(pointerY)
		limit := g.origStart + minDurationHours
		if candidate < limit {
			candidate = limit
		}
		if candidate > g.axis.DayEnd {
			candidate = g.axis.DayEnd
		}
		g.previewEnd = candidate
	}
}

// Preview returns the current preview window in decimal hours.
// ok is false when idle.
func (g *Gesture) Preview() (start, end float64, ok bool) {
	if !g.Active() {
		return 0, 0, false
	}
	return g.previewStart, g.previewEnd, true
}

// PreviewTimes returns the preview window as "HH:MM" strings.
func (g *Gesture) PreviewTimes() (start, end string, ok bool) {
	if !g.Active() {
		return "", "", false
	}
	return timeline.FormatClock(g.previewStart), timeline.FormatClock(g.previewEnd), true
}

// Release finishes the gesture at the final pointer position and returns
// the single commit request for it, with times rounded to whole minutes.
// The gesture returns to idle unconditionally, whatever the caller does
// with the update.
func (g *Gesture) Release(pointerY float64) (schedule.TimeUpdate, bool) {
	if !g.Active() {
		return schedule.TimeUpdate{}, false
	}

	g.Move(pointerY)
	update := schedule.TimeUpdate{
		ID:    g.entryID,
		Start: timeline.FormatClock(g.previewStart),
		End:   timeline.FormatClock(g.previewEnd),
	}

	*g = Gesture{}
	return update, true
}
