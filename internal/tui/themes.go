package tui

import (
	"os"

	"github.com/muesli/termenv"
)

// Theme represents the colour theme for the TUI.
type Theme string

const (
	// ThemeAuto automatically detects the terminal background colour.
	ThemeAuto Theme = "auto"
	// ThemeDark uses the teal palette designed for dark backgrounds.
	ThemeDark Theme = "dark"
	// ThemeLight uses deeper colours designed for light backgrounds.
	ThemeLight Theme = "light"
)

// DetectTheme queries the terminal background colour. Falls back to
// ThemeDark when the terminal does not answer.
func DetectTheme() Theme {
	output := termenv.NewOutput(os.Stdout)
	if output.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// ResolveTheme converts ThemeAuto to the detected theme and any unknown
// value to ThemeDark.
func ResolveTheme(configured Theme) Theme {
	switch configured {
	case ThemeAuto:
		return DetectTheme()
	case ThemeLight:
		return ThemeLight
	default:
		return ThemeDark
	}
}
