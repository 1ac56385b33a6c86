// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"tourboard/internal/schedule"
)

// SnapshotWindowDays is the half-width of the date range loaded around
// the focused day. The timeline only ever shows one day, but keeping a
// window loaded makes day navigation instant and gives the conflict
// index cross-day context for nothing.
const SnapshotWindowDays = 30

// SnapshotMsg carries a full reload of scheduling truth from the store.
type SnapshotMsg struct {
	Groups  []schedule.Group
	Entries []*schedule.Entry
	Cards   []*schedule.DailyCard
}

// CommitDoneMsg is sent when an entry time update has been persisted.
type CommitDoneMsg struct {
	Update schedule.TimeUpdate
}

// CommitFailedMsg is sent when persisting an entry time update failed.
// The model must discard its preview and reload from the store.
type CommitFailedMsg struct {
	Update schedule.TimeUpdate
	Err    error
}

// ErrMsg is sent when a non-commit error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CopiedMsg is sent after a day report was copied to the clipboard.
type CopiedMsg struct{}

// LoadSnapshot loads groups, entries and daily cards around the focused
// day. Used both at startup and after every commit, successful or not.
func LoadSnapshot(repo schedule.Repository, focus time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		start := focus.AddDate(0, 0, -SnapshotWindowDays)
		end := focus.AddDate(0, 0, SnapshotWindowDays)

		groups, err := repo.ListGroups(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading groups: %w", err)}
		}

		entries, err := repo.ListEntries(ctx, start, end)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading entries: %w", err)}
		}

		cards, err := repo.ListDailyCards(ctx, start, end)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading daily cards: %w", err)}
		}

		return SnapshotMsg{Groups: groups, Entries: entries, Cards: cards}
	}
}

// CommitEntryTimes persists a single time update. Exactly one commit is
// issued per completed gesture.
func CommitEntryTimes(repo schedule.Repository, update schedule.TimeUpdate) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateEntryTimes(context.Background(), update); err != nil {
			return CommitFailedMsg{Update: update, Err: err}
		}
		return CommitDoneMsg{Update: update}
	}
}

// CopyToClipboard copies text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{}
	}
}

// ClearStatusAfter schedules a status bar reset.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
