package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Scheduled activities: cyan
	colorActivity = color.New(color.FgCyan)

	// Double bookings: bold red to demand review
	colorConflict = color.New(color.FgRed, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Counts and confirmations: green
	colorStats = color.New(color.FgGreen)

	// Secondary information: dim
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatActivity(s string) string {
	return colorActivity.Sprint(s)
}

func formatConflict(s string) string {
	return colorConflict.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatStats(s string) string {
	return colorStats.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
