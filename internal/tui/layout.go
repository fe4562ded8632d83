package tui

// MinTerminalWidth is the minimum supported terminal width.
const MinTerminalWidth = 60

// MinTerminalHeight is the minimum supported terminal height.
const MinTerminalHeight = 12

// Panel heights (number of lines)
const (
	// HeaderPanelHeight is the height of the header panel (brand, command, elapsed).
	HeaderPanelHeight = 1

	// WindowPanelHeight is the height of the window panel (fill bar and line stats).
	WindowPanelHeight = 2

	// HelpBarHeight is the height of the help bar (outside main frame).
	HelpBarHeight = 1

	// BorderHeight is the number of horizontal borders: top, after header,
	// after scroll area and bottom.
	BorderHeight = 4
)

// Layout represents the calculated dimensions for each UI region.
type Layout struct {
	Width  int
	Height int

	HeaderPanelHeight int
	ScrollAreaHeight  int
	WindowPanelHeight int
	HelpBarHeight     int

	// TooSmall indicates the terminal is below minimum size
	TooSmall bool

	// TooSmallMessage is shown when terminal is too small
	TooSmallMessage string
}

// CalculateLayout computes the layout based on terminal dimensions.
func CalculateLayout(width, height int) Layout {
	layout := Layout{
		Width:             width,
		Height:            height,
		HeaderPanelHeight: HeaderPanelHeight,
		WindowPanelHeight: WindowPanelHeight,
		HelpBarHeight:     HelpBarHeight,
	}

	if width < MinTerminalWidth {
		layout.TooSmall = true
		layout.TooSmallMessage = "Terminal too narrow. Minimum width: 60 columns."
		return layout
	}

	if height < MinTerminalHeight {
		layout.TooSmall = true
		layout.TooSmallMessage = "Terminal too short. Minimum height: 12 rows."
		return layout
	}

	fixedHeight := layout.HeaderPanelHeight + layout.WindowPanelHeight + layout.HelpBarHeight + BorderHeight
	layout.ScrollAreaHeight = height - fixedHeight

	return layout
}

// ContentWidth returns the usable width inside panels (accounting for borders).
func (l Layout) ContentWidth() int {
	return l.Width - 2
}

// MaxScrollOffset returns the largest scroll offset for lineCount lines.
func (l Layout) MaxScrollOffset(lineCount int) int {
	return max(lineCount-l.ScrollAreaHeight, 0)
}
