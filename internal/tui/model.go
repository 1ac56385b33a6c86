package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tourboard/internal/config"
	"tourboard/internal/dateutil"
	"tourboard/internal/schedule"
	"tourboard/internal/timeline"
	"tourboard/internal/tui/commands"
	"tourboard/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Jump-to-date prompt is focused
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   schedule.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Scheduling truth, rebuilt in full from every snapshot
	index *schedule.Index
	cards map[int64]map[string]*schedule.DailyCard // group id -> day key

	// State
	focusDate      time.Time
	snapshotCenter time.Time // date the loaded window is centered on
	mode           Mode
	loading        bool

	// Pointer edit session
	gesture        Gesture
	gestureBandTop int // terminal row of the grabbed band's body

	// Layout, recomputed on resize and on snapshot
	axis   timeline.Axis
	layout BoardLayout

	// Components
	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusTime time.Time

	// Error state
	err error

	// Injected clock for tests
	nowFunc func() time.Time
}

// New creates a new TUI model.
func New(repo schedule.Repository, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "2026-07-14, today, tuesday..."
	ti.CharLimit = 32
	ti.Width = 30

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti.PlaceholderStyle = styles.HelpStyle
	ti.TextStyle = styles.PromptFocusedStyle.UnsetBorderStyle().UnsetPadding()

	today := dateutil.TruncateToDay(time.Now())
	m := &Model{
		repo:           repo,
		config:         cfg,
		theme:          t,
		styles:         styles,
		index:          schedule.BuildIndex(nil, nil),
		cards:          map[int64]map[string]*schedule.DailyCard{},
		focusDate:      today,
		snapshotCenter: today,
		mode:           ModeNormal,
		loading:        true,
		prompt:         ti,
		axis:           timeline.NewAxis(timeline.DefaultMinPixelsPerHour),
		nowFunc:        time.Now,
	}
	m.rebuildAxis()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadSnapshot(m.repo, m.focusDate)
}

// Run starts the TUI. Mouse tracking stays on for the whole session so
// drags report motion between press and release.
func Run(repo schedule.Repository, cfg *config.Config) error {
	p := tea.NewProgram(New(repo, cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// rebuildAxis recomputes the vertical scale from the configured day range
// and the current terminal size, then lays the group bands out again.
func (m *Model) rebuildAxis() {
	dayStart := timeline.ParseClock(m.config.Timeline.DayStart)
	dayEnd := timeline.ParseClock(m.config.Timeline.DayEnd)

	scale := timeline.FitPixelsPerHour(
		m.boardHeight(), len(m.index.Groups()),
		dayStart, dayEnd,
		m.config.Timeline.MinScale, m.config.Timeline.MaxScale,
	)

	m.axis = timeline.Axis{DayStart: dayStart, DayEnd: dayEnd, PixelsPerHour: scale}
	m.layout = NewBoardLayout(m.index, m.axis, m.focusDate, m.width)
}

// cardFor returns the daily card for a group on the focused date, or nil.
func (m *Model) cardFor(groupID int64) *schedule.DailyCard {
	byDay := m.cards[groupID]
	if byDay == nil {
		return nil
	}
	return byDay[dateutil.DayKey(m.focusDate)]
}

// setStatus shows a transient status line message.
func (m *Model) setStatus(msg string, d time.Duration) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = m.nowFunc().Add(d)
	return commands.ClearStatusAfter(d)
}
