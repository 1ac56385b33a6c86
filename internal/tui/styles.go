// Package tui provides the terminal user interface for tourboard.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tourboard/internal/tui/theme"
)

// Width of the time ruler column on the left edge of the board.
const rulerWidth = 6

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorActivity    lipgloss.Color
	colorAncillary   lipgloss.Color
	colorPreview     lipgloss.Color
	colorWarning     lipgloss.Color

	// Title style
	TitleStyle lipgloss.Style

	// Group band header
	BandHeaderStyle lipgloss.Style

	// Time ruler column
	RulerStyle lipgloss.Style

	// Entry block styles
	BlockStyle         lipgloss.Style
	BlockAltStyle      lipgloss.Style // adjacent blocks in the same band
	BlockConflictStyle lipgloss.Style
	BlockPreviewStyle  lipgloss.Style
	BlockGrabbedStyle  lipgloss.Style

	// Ancillary rows (meals, lodging)
	AncillaryStyle lipgloss.Style

	// Empty timeline cell
	EmptyCellStyle lipgloss.Style

	// Prompt box (jump to date)
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Error message
	ErrorStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Separator between bands
	SeparatorStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Viewport background
	ViewportStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}

	s.colorBg = theme.Color(t.Bg)
	s.colorBgHighlight = theme.Color(t.BgHighlight)
	s.colorBgSelection = theme.Color(t.BgSelection)
	s.colorFg = theme.Color(t.Fg)
	s.colorFgMuted = theme.Color(t.FgMuted)
	s.colorAccent = theme.Color(t.Accent)
	s.colorActivity = theme.Color(t.Activity)
	s.colorAncillary = theme.Color(t.Ancillary)
	s.colorPreview = theme.Color(t.Preview)
	s.colorWarning = theme.Color(t.Warning)

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.BandHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorBgHighlight).
		Padding(0, 1)

	s.RulerStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Width(rulerWidth)

	s.BlockStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(s.colorActivity).
		Bold(true)

	s.BlockAltStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorActivity).
		Bold(true)

	s.BlockConflictStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(s.colorWarning).
		Bold(true)

	s.BlockPreviewStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorPreview).
		Bold(true)

	s.BlockGrabbedStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorFgMuted)

	s.AncillaryStyle = lipgloss.NewStyle().
		Foreground(s.colorAncillary).
		Background(s.colorBg)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorPreview).
		Background(s.colorBg).
		Bold(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.SeparatorStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	s.ViewportStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	return s
}

// BlockStyleWidth returns the block style with the specified width.
func (s *Styles) BlockStyleWidth(width int) lipgloss.Style {
	return s.BlockStyle.Width(width)
}

// BlockConflictStyleWidth returns the conflict block style with the
// specified width.
func (s *Styles) BlockConflictStyleWidth(width int) lipgloss.Style {
	return s.BlockConflictStyle.Width(width)
}

// BlockPreviewStyleWidth returns the preview block style with the
// specified width.
func (s *Styles) BlockPreviewStyleWidth(width int) lipgloss.Style {
	return s.BlockPreviewStyle.Width(width)
}
