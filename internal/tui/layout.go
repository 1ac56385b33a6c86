package tui

import (
	"time"

	"tourboard/internal/schedule"
	"tourboard/internal/timeline"
)

// Fixed chrome rows around the board.
const (
	headerRows     = 2 // app padding + title line
	footerRows     = 2 // status line + help line
	bandHeaderRows = 1 // group name above each band
	leftPad        = 2 // app padding
)

// HitZone classifies where inside an entry block the pointer landed.
type HitZone int

const (
	ZoneBody HitZone = iota
	ZoneTopEdge
	ZoneBottomEdge
)

// Band is the screen region of one group's day timeline.
type Band struct {
	GroupID   int64
	GroupName string
	HeaderRow int
	BodyTop   int
	BodyRows  int
	Cells     []timeline.Cell
}

// BoardLayout maps terminal coordinates to groups and timeline positions.
// One band per group, stacked vertically, each holding the full day axis.
type BoardLayout struct {
	Bands    []Band
	BodyLeft int // first column of timeline content, after the ruler
	Width    int
}

// NewBoardLayout lays out one band per group for the focused date. Cells
// are precomputed here so view and hit testing agree on geometry.
func NewBoardLayout(ix *schedule.Index, axis timeline.Axis, focusDate time.Time, width int) BoardLayout {
	l := BoardLayout{
		BodyLeft: leftPad + rulerWidth,
		Width:    width,
	}

	bodyRows := int(axis.Height() + 0.5)
	row := headerRows
	for _, g := range ix.Groups() {
		items := schedule.ComposeDay(g.ID, focusDate, ix, nil)
		band := Band{
			GroupID:   g.ID,
			GroupName: g.Name,
			HeaderRow: row,
			BodyTop:   row + bandHeaderRows,
			BodyRows:  bodyRows,
			Cells:     timeline.BuildCells(ix, axis, items),
		}
		l.Bands = append(l.Bands, band)
		row = band.BodyTop + band.BodyRows
	}
	return l
}

// BandAt returns the band whose body contains terminal row y.
func (l BoardLayout) BandAt(y int) (Band, bool) {
	for _, b := range l.Bands {
		if y >= b.BodyTop && y < b.BodyTop+b.BodyRows {
			return b, true
		}
	}
	return Band{}, false
}

// PointerY converts a terminal row inside a band's body to the axis
// pixel coordinate used by the mapper.
func (b Band) PointerY(y int) float64 {
	return float64(y - b.BodyTop)
}

// CellAt returns the cell under the axis coordinate, plus which zone of
// the block was hit. The top and bottom rows of a block act as resize
// handles when the block is tall enough to keep a draggable body.
func (b Band) CellAt(pointerY float64) (timeline.Cell, HitZone, bool) {
	for _, c := range b.Cells {
		if pointerY < c.Top || pointerY >= c.Top+c.Height {
			continue
		}
		if c.Height >= 3 {
			switch {
			case pointerY < c.Top+1:
				return c, ZoneTopEdge, true
			case pointerY >= c.Top+c.Height-1:
				return c, ZoneBottomEdge, true
			}
		}
		return c, ZoneBody, true
	}
	return timeline.Cell{}, ZoneBody, false
}

// boardHeight returns the rows available for band bodies.
func (m *Model) boardHeight() int {
	n := len(m.index.Groups())
	if n < 1 {
		n = 1
	}
	h := m.height - headerRows - footerRows - n*bandHeaderRows
	if h < 0 {
		return 0
	}
	return h
}
