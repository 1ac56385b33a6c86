package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tourboard/internal/dateutil"
	"tourboard/internal/schedule"
	"tourboard/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gesture = Gesture{}
		m.rebuildAxis()
		return m, nil

	case commands.SnapshotMsg:
		m.applySnapshot(msg)
		return m, nil

	case commands.CommitDoneMsg:
		cmd := m.setStatus(
			fmt.Sprintf("Saved %s-%s", msg.Update.Start, msg.Update.End),
			3*time.Second,
		)
		m.loading = true
		return m, tea.Batch(cmd, commands.LoadSnapshot(m.repo, m.focusDate))

	case commands.CommitFailedMsg:
		// The store refused the update. Whatever the screen shows is now
		// suspect, so reload truth before the user edits again.
		cmd := m.setStatus(fmt.Sprintf("Error: %v", msg.Err), 5*time.Second)
		m.loading = true
		return m, tea.Batch(cmd, commands.LoadSnapshot(m.repo, m.focusDate))

	case commands.ErrMsg:
		m.err = msg.Err
		m.loading = false
		return m, m.setStatus(fmt.Sprintf("Error: %v", msg.Err), 5*time.Second)

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg, 3*time.Second)

	case commands.ClearStatusMsg:
		if m.nowFunc().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case commands.CopiedMsg:
		return m, m.setStatus("Day itinerary copied to clipboard", 3*time.Second)
	}

	return m, nil
}

// applySnapshot replaces all scheduling truth with a fresh load.
func (m *Model) applySnapshot(msg commands.SnapshotMsg) {
	m.index = schedule.BuildIndex(msg.Entries, msg.Groups)

	m.cards = map[int64]map[string]*schedule.DailyCard{}
	for _, c := range msg.Cards {
		byDay := m.cards[c.GroupID]
		if byDay == nil {
			byDay = map[string]*schedule.DailyCard{}
			m.cards[c.GroupID] = byDay
		}
		byDay[dateutil.DayKey(c.Date)] = c
	}

	m.snapshotCenter = m.focusDate
	m.loading = false
	m.err = nil
	m.gesture = Gesture{}
	m.rebuildAxis()
}

// handleMouseMsg routes pointer events through the gesture session.
// Press grabs an entry block, motion moves the preview, release commits
// exactly once.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.startGesture(msg.X, msg.Y)
		return m, nil

	case tea.MouseActionMotion:
		if m.gesture.Active() {
			m.gesture.Move(m.gesturePointerY(msg.Y))
		}
		return m, nil

	case tea.MouseActionRelease:
		update, ok := m.gesture.Release(m.gesturePointerY(msg.Y))
		if !ok {
			return m, nil
		}
		m.loading = true
		return m, commands.CommitEntryTimes(m.repo, update)
	}

	return m, nil
}

// startGesture begins a drag or resize when the press lands on an entry
// block. Presses elsewhere, and presses during an active gesture, do
// nothing.
func (m *Model) startGesture(x, y int) {
	if m.gesture.Active() || m.loading {
		return
	}
	if x < m.layout.BodyLeft {
		return
	}

	band, ok := m.layout.BandAt(y)
	if !ok {
		return
	}

	pointerY := band.PointerY(y)
	cell, zone, ok := band.CellAt(pointerY)
	if !ok {
		return
	}
	entry := m.index.EntryByID(cell.EntryID)
	if entry == nil {
		return
	}

	switch zone {
	case ZoneTopEdge:
		m.gesture.StartResize(entry, m.axis, EdgeTop)
	case ZoneBottomEdge:
		m.gesture.StartResize(entry, m.axis, EdgeBottom)
	default:
		m.gesture.StartDrag(entry, m.axis, pointerY)
	}
	if m.gesture.Active() {
		m.gestureBandTop = band.BodyTop
	}
}

// gesturePointerY converts a terminal row to the axis coordinate of the
// band the gesture started in. Motion outside that band still maps onto
// the same axis, so drags past the band edge clamp instead of jumping.
func (m *Model) gesturePointerY(y int) float64 {
	return float64(y - m.gestureBandTop)
}
