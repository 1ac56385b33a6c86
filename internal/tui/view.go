package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"tourboard/internal/schedule"
	"tourboard/internal/timeline"
)

// View renders the day board: a time ruler on the left and one band per
// group, stacked vertically.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	title := fmt.Sprintf("tourboard  %s", m.focusDate.Format("Monday, 2 Jan 2006"))
	if m.loading {
		title += "  (loading)"
	}
	b.WriteString(m.styles.TitleStyle.Render(title))
	b.WriteString("\n")

	if len(m.layout.Bands) == 0 {
		b.WriteString(m.styles.HelpStyle.Render("No travel groups yet. Run: tourboard demo"))
		b.WriteString("\n")
	}

	for _, band := range m.layout.Bands {
		b.WriteString(m.renderBand(band))
	}

	b.WriteString(m.renderFooter())

	return m.styles.AppStyle.Render(b.String())
}

// renderBand renders one group's header row and day timeline.
func (m Model) renderBand(band Band) string {
	var b strings.Builder

	header := band.GroupName
	if u := m.unscheduledFor(band.GroupID); len(u) != 0 {
		header += "  |  unscheduled: " + strings.Join(u, ", ")
	}
	b.WriteString(m.styles.BandHeaderStyle.Render(ansi.Truncate(header, m.bodyWidth()+rulerWidth, "...")))
	b.WriteString("\n")

	cells, grabbedID := m.displayCells(band)
	hourRows := m.hourRows()
	ancillary := m.ancillaryRows(band.GroupID)

	for row := 0; row < band.BodyRows; row++ {
		b.WriteString(m.styles.RulerStyle.Render(hourRows[row]))
		b.WriteString(m.renderBodyRow(row, cells, grabbedID, ancillary))
		b.WriteString("\n")
	}

	return b.String()
}

// displayCells returns the band's cells with the active gesture preview
// substituted in, plus the id of the entry being edited (0 when none).
func (m Model) displayCells(band Band) ([]timeline.Cell, int64) {
	if !m.gesture.Active() || m.gesture.GroupID() != band.GroupID {
		return band.Cells, 0
	}

	start, end, _ := m.gesture.Preview()
	startT, endT, _ := m.gesture.PreviewTimes()

	cells := make([]timeline.Cell, len(band.Cells))
	copy(cells, band.Cells)
	for i := range cells {
		if cells[i].EntryID != m.gesture.EntryID() {
			continue
		}
		cells[i].Top = m.axis.TimeToY(start)
		cells[i].Height = (end - start) * m.axis.PixelsPerHour
		cells[i].Start = startT
		cells[i].End = endT
	}
	return cells, m.gesture.EntryID()
}

// renderBodyRow renders the timeline content right of the ruler for one
// terminal row of a band.
func (m Model) renderBodyRow(row int, cells []timeline.Cell, grabbedID int64, ancillary map[int]string) string {
	width := m.bodyWidth()
	rowY := float64(row) + 0.5

	for _, c := range cells {
		if rowY < c.Top || rowY >= c.Top+c.Height {
			continue
		}

		style := m.styles.BlockStyleWidth(width)
		switch {
		case c.EntryID == grabbedID:
			style = m.styles.BlockPreviewStyleWidth(width)
		case c.HasConflict():
			style = m.styles.BlockConflictStyleWidth(width)
		}

		// Label on the block's first row, fill below.
		if int(c.Top+0.5) == row {
			return style.Render(ansi.Truncate(m.blockLabel(c), width, "..."))
		}
		return style.Render("")
	}

	if label, ok := ancillary[row]; ok {
		return m.styles.AncillaryStyle.Width(width).Render(ansi.Truncate(label, width, "..."))
	}

	return m.styles.EmptyCellStyle.Width(width).Render("")
}

func (m Model) blockLabel(c timeline.Cell) string {
	label := fmt.Sprintf("%s-%s %s", c.Start, c.End, c.Label)
	if c.HasConflict() {
		label = fmt.Sprintf("!! %s (also %s)", label, schedule.JoinConflictNames(c.ConflictGroups))
	}
	return label
}

// hourRows maps each body row to its ruler label, empty when the row
// carries no whole hour.
func (m Model) hourRows() map[int]string {
	rows := map[int]string{}
	for h := int(m.axis.DayStart); float64(h) <= m.axis.DayEnd; h++ {
		if float64(h) < m.axis.DayStart {
			continue
		}
		row := int(m.axis.TimeToY(float64(h)) + 0.5)
		if _, taken := rows[row]; !taken {
			rows[row] = fmt.Sprintf("%02d:00", h)
		}
	}
	return rows
}

// ancillaryRows maps body rows to meal and lodging labels for a group's
// focused day.
func (m Model) ancillaryRows(groupID int64) map[int]string {
	rows := map[int]string{}
	for _, it := range schedule.ComposeDay(groupID, m.focusDate, m.index, m.cardFor(groupID)) {
		if !it.IsAncillary() {
			continue
		}
		row := int(m.axis.TimeToY(timeline.ParseClock(it.Time)) + 0.5)
		if _, taken := rows[row]; !taken {
			rows[row] = fmt.Sprintf("%s %s", it.Time, it.Label)
		}
	}
	return rows
}

// unscheduledFor lists descriptions of the group's entries on the focused
// day that have no time window yet.
func (m Model) unscheduledFor(groupID int64) []string {
	var out []string
	for _, e := range m.index.EntriesFor(groupID, m.focusDate) {
		if !e.IsScheduled() {
			out = append(out, e.Description)
		}
	}
	return out
}

func (m Model) renderFooter() string {
	var b strings.Builder

	if m.mode == ModePrompt {
		b.WriteString(m.styles.PromptFocusedStyle.Render("Jump to date: " + m.prompt.View()))
		b.WriteString("\n")
	}

	switch {
	case m.statusMsg != "" && strings.HasPrefix(m.statusMsg, "Error:"):
		b.WriteString(m.styles.ErrorStyle.Render(m.statusMsg))
	case m.statusMsg != "":
		b.WriteString(m.styles.StatusStyle.Render(m.statusMsg))
	default:
		b.WriteString(m.styles.StatusStyle.Render(" "))
	}
	b.WriteString("\n")

	help := "h/l day  t today  g jump  y copy  r reload  q quit  drag blocks to move, edges to resize"
	b.WriteString(m.styles.HelpStyle.Render(ansi.Truncate(help, m.width-2*leftPad, "")))

	return b.String()
}

// bodyWidth returns the columns available for timeline content.
func (m Model) bodyWidth() int {
	w := m.width - 2*leftPad - rulerWidth
	if w < 10 {
		w = 10
	}
	return w
}
