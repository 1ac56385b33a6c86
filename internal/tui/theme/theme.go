// Package theme provides color themes for the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          string // Base background
	BgHighlight string // Entry blocks, subtle highlight
	BgSelection string // Cursor, selection
	Fg          string // Primary foreground
	FgMuted     string // Ancillary events, muted elements
	Accent      string // Title, primary accent, borders
	Activity    string // Scheduled activity blocks
	Ancillary   string // Meal/lodging rows
	Preview     string // Gesture preview blocks
	Warning     string // Conflicts
}

// builtins holds the available themes, keyed by lowercase name.
// The palettes are the four Catppuccin flavors.
var builtins = map[string]Theme{
	"mocha": {
		Name:        "mocha",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		BgSelection: "#45475a",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#89b4fa",
		Activity:    "#74c7ec",
		Ancillary:   "#a6adc8",
		Preview:     "#a6e3a1",
		Warning:     "#f38ba8",
	},
	"macchiato": {
		Name:        "macchiato",
		Bg:          "#24273a",
		BgHighlight: "#363a4f",
		BgSelection: "#494d64",
		Fg:          "#cad3f5",
		FgMuted:     "#6e738d",
		Accent:      "#8aadf4",
		Activity:    "#7dc4e4",
		Ancillary:   "#a5adcb",
		Preview:     "#a6da95",
		Warning:     "#ed8796",
	},
	"frappe": {
		Name:        "frappe",
		Bg:          "#303446",
		BgHighlight: "#414559",
		BgSelection: "#51576d",
		Fg:          "#c6d0f5",
		FgMuted:     "#737994",
		Accent:      "#8caaee",
		Activity:    "#85c1dc",
		Ancillary:   "#a5adce",
		Preview:     "#a6d189",
		Warning:     "#e78284",
	},
	"latte": {
		Name:        "latte",
		Bg:          "#eff1f5",
		BgHighlight: "#ccd0da",
		BgSelection: "#bcc0cc",
		Fg:          "#4c4f69",
		FgMuted:     "#8c8fa1",
		Accent:      "#1e66f5",
		Activity:    "#209fb5",
		Ancillary:   "#6c6f85",
		Preview:     "#40a02b",
		Warning:     "#d20f39",
	},
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a built-in theme by name.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	t, ok := builtins[name]
	if !ok {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("unknown theme %q", name)
	}

	return &t, nil
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
