package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tourboard/internal/dateutil"
	"tourboard/internal/schedule"
	"tourboard/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode == ModePrompt {
		return m.handlePromptKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "h", "left":
		return m.focusDay(m.focusDate.AddDate(0, 0, -1))

	case "l", "right":
		return m.focusDay(m.focusDate.AddDate(0, 0, 1))

	case "t":
		return m.focusDay(dateutil.TruncateToDay(m.nowFunc()))

	case "g", "/":
		m.mode = ModePrompt
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, nil

	case "r":
		m.loading = true
		return m, commands.LoadSnapshot(m.repo, m.focusDate)

	case "y":
		report := schedule.FormatDayReport(m.index, m.focusDate, m.dayCards())
		return m, commands.CopyToClipboard(report)
	}

	return m, nil
}

// handlePromptKeys handles keys while the jump-to-date prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, nil

	case "enter":
		date, err := dateutil.ParseRelativeDate(m.prompt.Value(), m.nowFunc())
		m.mode = ModeNormal
		m.prompt.Blur()
		if err != nil {
			return m, m.setStatus(fmt.Sprintf("Error: %v", err), 3*time.Second)
		}
		return m.focusDay(date)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// focusDay moves the focused date, reloading the snapshot when the new
// date falls outside the loaded window.
func (m Model) focusDay(date time.Time) (tea.Model, tea.Cmd) {
	m.focusDate = dateutil.TruncateToDay(date)
	m.gesture = Gesture{}

	if m.outsideSnapshot(m.focusDate) {
		m.loading = true
		m.snapshotCenter = m.focusDate
		m.rebuildAxis()
		return m, commands.LoadSnapshot(m.repo, m.focusDate)
	}

	m.rebuildAxis()
	return m, nil
}

func (m *Model) outsideSnapshot(date time.Time) bool {
	days := int(date.Sub(m.snapshotCenter).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days >= commands.SnapshotWindowDays
}

// dayCards returns the focused date's cards keyed by group id.
func (m *Model) dayCards() map[int64]*schedule.DailyCard {
	out := map[int64]*schedule.DailyCard{}
	for _, g := range m.index.Groups() {
		if c := m.cardFor(g.ID); c != nil {
			out[g.ID] = c
		}
	}
	return out
}
