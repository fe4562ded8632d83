// Package tui provides the live terminal view of a watched command using
// bubbletea.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dark theme colour palette (for dark terminal backgrounds)
const (
	ColourTeal       = lipgloss.Color("37")  // #00AFAF - Headers, borders, brand
	ColourTealDim    = lipgloss.Color("23")  // #005F5F - Help text, separators
	ColourTealLight  = lipgloss.Color("159") // #AFFFFF - Values
	ColourTealFaded  = lipgloss.Color("73")  // #5FAFAF - Labels
	ColourText       = lipgloss.Color("252") // #D0D0D0 - Output text
	ColourSuccess    = lipgloss.Color("78")  // #5FD787 - Completed, matched
	ColourWarning    = lipgloss.Color("214") // #FFAF00 - Warn lines, window above 80%
	ColourError      = lipgloss.Color("203") // #FF5F5F - Error lines, failed runs
	ColourDebug      = lipgloss.Color("244") // #808080 - Debug lines
	ColourBackground = lipgloss.Color("0")
)

// Light theme colour palette (for light terminal backgrounds)
const (
	ColourTealDark       = lipgloss.Color("30")  // #008787
	ColourTealDarkDim    = lipgloss.Color("66")  // #5F8787
	ColourTealDarkMid    = lipgloss.Color("24")  // #005F87
	ColourTealDarkFaded  = lipgloss.Color("67")  // #5F87AF
	ColourTextDark       = lipgloss.Color("235") // #262626
	ColourSuccessDark    = lipgloss.Color("28")  // #008700
	ColourWarningDark    = lipgloss.Color("130") // #AF5F00
	ColourErrorDark      = lipgloss.Color("160") // #D70000
	ColourDebugDark      = lipgloss.Color("245") // #8A8A8A
	ColourBackgroundLite = lipgloss.Color("231")
)

// Box drawing characters for the UI frame.
// Outer frame uses double lines, inner divisions use single lines.
const (
	BoxTopLeft     = "╔"
	BoxTopRight    = "╗"
	BoxBottomLeft  = "╚"
	BoxBottomRight = "╝"
	BoxHorizontal  = "═"
	BoxVertical    = "║"
	BoxLeftT       = "╠"
	BoxRightT      = "╣"

	InnerHorizontal = "─"
	InnerVertical   = "│"
)

// Progress bar characters
const (
	BarFilled = "█"
	BarEmpty  = "░"
	BarWidth  = 20
)

// Status icons
const (
	IconBrand    = "◆"
	IconRunning  = "●"
	IconComplete = "✓"
	IconMatched  = "◎"
	IconError    = "✗"
	IconPaused   = "⏸"
	Ellipsis     = "…"
)

// Styles contains all lipgloss styles for the UI.
type Styles struct {
	Border lipgloss.Style

	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Output lines by level
	LinePlain lipgloss.Style
	LineDebug lipgloss.Style
	LineWarn  lipgloss.Style
	LineError lipgloss.Style

	TooSmallMessage lipgloss.Style

	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	Brand lipgloss.Style
}

// DarkStyles returns the teal theme for dark terminal backgrounds.
func DarkStyles() Styles {
	return Styles{
		Border: lipgloss.NewStyle().Foreground(ColourTeal),

		Header: lipgloss.NewStyle().Foreground(ColourTeal).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColourTealFaded),
		Value:  lipgloss.NewStyle().Foreground(ColourTealLight),

		Success: lipgloss.NewStyle().Foreground(ColourSuccess).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(ColourWarning),
		Error:   lipgloss.NewStyle().Foreground(ColourError).Bold(true),

		LinePlain: lipgloss.NewStyle().Foreground(ColourText),
		LineDebug: lipgloss.NewStyle().Foreground(ColourDebug),
		LineWarn:  lipgloss.NewStyle().Foreground(ColourWarning),
		LineError: lipgloss.NewStyle().Foreground(ColourError),

		TooSmallMessage: lipgloss.NewStyle().Foreground(ColourWarning).Bold(true),

		HelpBar: lipgloss.NewStyle().Foreground(ColourTealDim),
		HelpKey: lipgloss.NewStyle().Foreground(ColourTealFaded),

		Brand: lipgloss.NewStyle().Foreground(ColourBackground).Background(ColourTeal).Bold(true).Padding(0, 1),
	}
}

// LightStyles returns the teal theme for light terminal backgrounds.
func LightStyles() Styles {
	return Styles{
		Border: lipgloss.NewStyle().Foreground(ColourTealDark),

		Header: lipgloss.NewStyle().Foreground(ColourTealDark).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColourTealDarkFaded),
		Value:  lipgloss.NewStyle().Foreground(ColourTealDarkMid),

		Success: lipgloss.NewStyle().Foreground(ColourSuccessDark).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(ColourWarningDark),
		Error:   lipgloss.NewStyle().Foreground(ColourErrorDark).Bold(true),

		LinePlain: lipgloss.NewStyle().Foreground(ColourTextDark),
		LineDebug: lipgloss.NewStyle().Foreground(ColourDebugDark),
		LineWarn:  lipgloss.NewStyle().Foreground(ColourWarningDark),
		LineError: lipgloss.NewStyle().Foreground(ColourErrorDark),

		TooSmallMessage: lipgloss.NewStyle().Foreground(ColourWarningDark).Bold(true),

		HelpBar: lipgloss.NewStyle().Foreground(ColourTealDarkDim),
		HelpKey: lipgloss.NewStyle().Foreground(ColourTealDarkFaded),

		Brand: lipgloss.NewStyle().Foreground(ColourBackgroundLite).Background(ColourTealDark).Bold(true).Padding(0, 1),
	}
}

// GetStyles returns the Styles for the given theme.
// Falls back to dark theme for unknown theme values.
func GetStyles(theme Theme) Styles {
	if theme == ThemeLight {
		return LightStyles()
	}
	return DarkStyles()
}

// RenderProgressBar renders a progress bar with the given ratio (0.0 to 1.0).
// Returns a string like [████████░░░░░░░░░░░░]. Ratios above 0.8 use
// warningStyle.
func RenderProgressBar(ratio float64, width int, normalStyle, warningStyle lipgloss.Style) string {
	ratio = min(max(ratio, 0), 1)
	width = max(width, 0)
	filled := min(int(ratio*float64(width)), width)

	bar := strings.Repeat(BarFilled, filled) + strings.Repeat(BarEmpty, width-filled)

	style := normalStyle
	if ratio > 0.8 {
		style = warningStyle
	}
	return "[" + style.Render(bar) + "]"
}

// RenderDoubleBorder renders a horizontal divider of the given width.
func RenderDoubleBorder(width int, style lipgloss.Style) string {
	return renderRule(BoxLeftT, BoxHorizontal, BoxRightT, width, style)
}

// RenderTopBorder renders the top border of the frame.
func RenderTopBorder(width int, style lipgloss.Style) string {
	return renderRule(BoxTopLeft, BoxHorizontal, BoxTopRight, width, style)
}

// RenderBottomBorder renders the bottom border of the frame.
func RenderBottomBorder(width int, style lipgloss.Style) string {
	return renderRule(BoxBottomLeft, BoxHorizontal, BoxBottomRight, width, style)
}

func renderRule(left, fill, right string, width int, style lipgloss.Style) string {
	return style.Render(left + strings.Repeat(fill, max(width-2, 0)) + right)
}
