package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderProgressBar(t *testing.T) {
	plain := lipgloss.NewStyle()

	tests := []struct {
		name       string
		ratio      float64
		wantFilled int
	}{
		{"empty", 0, 0},
		{"half", 0.5, 10},
		{"full", 1, 20},
		{"negative clamps", -1, 0},
		{"over one clamps", 2.5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := ansi.Strip(RenderProgressBar(tt.ratio, BarWidth, plain, plain))
			if got := strings.Count(bar, BarFilled); got != tt.wantFilled {
				t.Errorf("filled cells = %d, want %d (bar %q)", got, tt.wantFilled, bar)
			}
			if got := ansi.StringWidth(bar); got != BarWidth+2 {
				t.Errorf("bar width = %d, want %d", got, BarWidth+2)
			}
		})
	}
}

func TestRenderBorders(t *testing.T) {
	plain := lipgloss.NewStyle()

	tests := []struct {
		name   string
		render func(int, lipgloss.Style) string
		prefix string
	}{
		{"top", RenderTopBorder, BoxTopLeft},
		{"divider", RenderDoubleBorder, BoxLeftT},
		{"bottom", RenderBottomBorder, BoxBottomLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(tt.render(10, plain))
			if ansi.StringWidth(got) != 10 {
				t.Errorf("width = %d, want 10", ansi.StringWidth(got))
			}
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("border %q should start with %q", got, tt.prefix)
			}
			if narrow := ansi.Strip(tt.render(1, plain)); ansi.StringWidth(narrow) != 2 {
				t.Errorf("narrow border width = %d, want 2", ansi.StringWidth(narrow))
			}
		})
	}
}

func TestGetStyles(t *testing.T) {
	if GetStyles(ThemeLight).Border.GetForeground() != LightStyles().Border.GetForeground() {
		t.Error("GetStyles(ThemeLight) should return the light styles")
	}
	if GetStyles(Theme("unknown")).Border.GetForeground() != DarkStyles().Border.GetForeground() {
		t.Error("GetStyles() should fall back to the dark styles")
	}
}

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		in   Theme
		want Theme
	}{
		{ThemeDark, ThemeDark},
		{ThemeLight, ThemeLight},
		{Theme("neon"), ThemeDark},
	}

	for _, tt := range tests {
		if got := ResolveTheme(tt.in); got != tt.want {
			t.Errorf("ResolveTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
