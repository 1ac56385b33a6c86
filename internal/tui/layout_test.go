package tui

import (
	"testing"
	"time"

	"tourboard/internal/schedule"
	"tourboard/internal/timeline"
)

func testIndex(day time.Time) *schedule.Index {
	entries := []*schedule.Entry{
		{ID: 1, GroupID: 1, Date: day, Start: "09:00", End: "10:30",
			Location: "Old Town", Description: "City walking tour"},
		{ID: 2, GroupID: 2, Date: day, Start: "14:00", End: "14:30",
			Location: "Harbor", Description: "Boat tickets"},
	}
	groups := []schedule.Group{
		{ID: 1, Name: "Red group"},
		{ID: 2, Name: "Blue group"},
	}
	return schedule.BuildIndex(entries, groups)
}

func TestBoardLayoutStacksBands(t *testing.T) {
	day := time.Date(2026, 7, 14, 0, 0, 0, 0, time.Local)
	axis := timeline.NewAxis(2.0)

	l := NewBoardLayout(testIndex(day), axis, day, 100)

	if len(l.Bands) != 2 {
		t.Fatalf("bands = %d, want 2", len(l.Bands))
	}

	first, second := l.Bands[0], l.Bands[1]
	if first.BodyTop != first.HeaderRow+1 {
		t.Errorf("body does not follow header: header %d, body %d", first.HeaderRow, first.BodyTop)
	}
	if second.HeaderRow != first.BodyTop+first.BodyRows {
		t.Errorf("second band overlaps first: first ends %d, second starts %d",
			first.BodyTop+first.BodyRows, second.HeaderRow)
	}
	if wantRows := int(axis.Height() + 0.5); first.BodyRows != wantRows {
		t.Errorf("body rows = %d, want %d", first.BodyRows, wantRows)
	}
}

func TestBandAt(t *testing.T) {
	day := time.Date(2026, 7, 14, 0, 0, 0, 0, time.Local)
	l := NewBoardLayout(testIndex(day), timeline.NewAxis(2.0), day, 100)

	first := l.Bands[0]

	if _, ok := l.BandAt(first.HeaderRow); ok {
		t.Error("header row resolved to a band body")
	}
	if b, ok := l.BandAt(first.BodyTop); !ok || b.GroupID != 1 {
		t.Errorf("BandAt(first body top) = %v, %v", b.GroupID, ok)
	}
	// The row after the first body is the second band's header, not body.
	if _, ok := l.BandAt(first.BodyTop + first.BodyRows); ok {
		t.Error("second band header resolved to a band body")
	}
	second := l.Bands[1]
	if b, ok := l.BandAt(second.BodyTop); !ok || b.GroupID != 2 {
		t.Errorf("BandAt(second body top) = %v, %v", b.GroupID, ok)
	}
}

func TestCellAtZones(t *testing.T) {
	day := time.Date(2026, 7, 14, 0, 0, 0, 0, time.Local)
	l := NewBoardLayout(testIndex(day), timeline.NewAxis(2.0), day, 100)

	// A 1.5h block at scale 2 spans 3 rows, enough for edge handles.
	band := l.Bands[0]
	top := band.Cells[0].Top

	if _, zone, ok := band.CellAt(top + 0.5); !ok || zone != ZoneTopEdge {
		t.Errorf("top row zone = %v, %v, want top edge", zone, ok)
	}
	if _, zone, ok := band.CellAt(top + 1.5); !ok || zone != ZoneBody {
		t.Errorf("middle row zone = %v, %v, want body", zone, ok)
	}
	if _, zone, ok := band.CellAt(top + 2.5); !ok || zone != ZoneBottomEdge {
		t.Errorf("bottom row zone = %v, %v, want bottom edge", zone, ok)
	}
	if _, _, ok := band.CellAt(top - 1); ok {
		t.Error("empty row resolved to a cell")
	}

	// A 30 minute block spans a single row and stays draggable.
	short := l.Bands[1]
	if _, zone, ok := short.CellAt(short.Cells[0].Top + 0.25); !ok || zone != ZoneBody {
		t.Errorf("short block zone = %v, %v, want body only", zone, ok)
	}
}
