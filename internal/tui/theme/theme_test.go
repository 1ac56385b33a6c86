package theme

import "testing"

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
	}{
		{name: "mocha", input: "mocha", wantName: "mocha"},
		{name: "latte", input: "latte", wantName: "latte"},
		{name: "case insensitive", input: "FRAPPE", wantName: "frappe"},
		{name: "empty defaults to mocha", input: "", wantName: "mocha"},
		{name: "unknown falls back to mocha", input: "nord", wantName: "mocha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := Load(tt.input)
			if err != nil {
				t.Fatalf("Load(%q): %v", tt.input, err)
			}
			if th.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.input, th.Name, tt.wantName)
			}
		})
	}
}

func TestThemesComplete(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			colors := []string{
				th.Bg, th.BgHighlight, th.BgSelection, th.Fg, th.FgMuted,
				th.Accent, th.Activity, th.Ancillary, th.Preview, th.Warning,
			}
			for i, c := range colors {
				if len(c) != 7 || c[0] != '#' {
					t.Errorf("color %d = %q, want #rrggbb", i, c)
				}
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Mocha") {
		t.Error("mocha should be available")
	}
	if IsAvailable("dracula") {
		t.Error("dracula should not be available")
	}
}
