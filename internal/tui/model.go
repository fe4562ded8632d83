package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/flashingpumpkin/ringtail/internal/output"
	"github.com/flashingpumpkin/ringtail/internal/util"
)

// ProgressInfo describes the run shown in the header.
type ProgressInfo struct {
	Command string
	Until   string
	Started time.Time
}

// Model is the main bubbletea model for the ringtail TUI.
type Model struct {
	// Layout
	layout Layout

	// Content
	outputLines *RingBuffer // Most recent output lines
	progress    ProgressInfo
	stats       StatsMsg
	done        *DoneMsg
	now         time.Time

	// Output scrolling
	outputScroll  int  // Line offset from the top of the buffer
	outputTailing bool // Whether the view is locked to the newest line

	styles Styles
	help   help.Model
	keys   keyMap
	ready  bool
}

// NewModel creates a new TUI model keeping up to maxLines lines.
func NewModel(theme Theme, maxLines int) Model {
	styles := GetStyles(theme)

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpBar
	h.Styles.ShortSeparator = styles.HelpBar

	return Model{
		outputLines:   NewRingBuffer(maxLines),
		outputTailing: true,
		styles:        styles,
		help:          h,
		keys:          defaultKeyMap,
		now:           time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = CalculateLayout(msg.Width, msg.Height)
		m.help.Width = max(msg.Width-2, 0)
		m.ready = true
		m.clampScroll()
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		if m.done != nil {
			return m, nil
		}
		return m, tick()

	case OutputLineMsg:
		if m.outputLines.Push(string(msg)) && !m.outputTailing && m.outputScroll > 0 {
			// Keep the same lines on screen while older ones are evicted.
			m.outputScroll--
		}
		return m, nil

	case StatsMsg:
		m.stats = msg
		return m, nil

	case ProgressMsg:
		m.progress = ProgressInfo(msg)
		return m, nil

	case DoneMsg:
		m.done = &msg
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			return m.scrollBy(-1), nil
		case key.Matches(msg, m.keys.Down):
			return m.scrollBy(1), nil
		case key.Matches(msg, m.keys.PageUp):
			return m.scrollBy(-m.layout.ScrollAreaHeight), nil
		case key.Matches(msg, m.keys.PageDown):
			return m.scrollBy(m.layout.ScrollAreaHeight), nil
		case key.Matches(msg, m.keys.Top):
			return m.scrollTo(0), nil
		case key.Matches(msg, m.keys.Tail):
			m.outputTailing = true
			return m, nil
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.scrollBy(-3), nil
		case tea.MouseButtonWheelDown:
			return m.scrollBy(3), nil
		}
	}

	return m, nil
}

// scrollBy moves the view delta lines. Scrolling up from the tail unlocks
// it; reaching the bottom locks it again.
func (m Model) scrollBy(delta int) Model {
	maxOffset := m.layout.MaxScrollOffset(m.outputLines.Len())
	if maxOffset == 0 {
		return m
	}
	offset := m.outputScroll
	if m.outputTailing {
		if delta >= 0 {
			return m
		}
		offset = maxOffset
	}
	return m.scrollTo(offset + delta)
}

func (m Model) scrollTo(offset int) Model {
	maxOffset := m.layout.MaxScrollOffset(m.outputLines.Len())
	offset = min(max(offset, 0), maxOffset)
	m.outputScroll = offset
	m.outputTailing = offset >= maxOffset
	return m
}

func (m *Model) clampScroll() {
	maxOffset := m.layout.MaxScrollOffset(m.outputLines.Len())
	if m.outputScroll > maxOffset {
		m.outputScroll = maxOffset
	}
	if maxOffset == 0 {
		m.outputTailing = true
		m.outputScroll = 0
	}
}

// startIndex returns the index of the first visible line.
func (m Model) startIndex() int {
	maxOffset := m.layout.MaxScrollOffset(m.outputLines.Len())
	if m.outputTailing {
		return maxOffset
	}
	return min(m.outputScroll, maxOffset)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initialising..."
	}
	if m.layout.TooSmall {
		return m.styles.TooSmallMessage.Render(m.layout.TooSmallMessage)
	}

	sections := []string{
		RenderTopBorder(m.layout.Width, m.styles.Border),
		m.renderHeader(),
		RenderDoubleBorder(m.layout.Width, m.styles.Border),
		m.renderScrollArea(),
		RenderDoubleBorder(m.layout.Width, m.styles.Border),
		m.renderWindowPanel(),
		RenderBottomBorder(m.layout.Width, m.styles.Border),
		m.renderHelpBar(),
	}
	return strings.Join(sections, "\n")
}

// frame pads content to the content width and wraps it in side borders.
func (m Model) frame(content string) string {
	width := m.layout.ContentWidth()
	content = ansi.Truncate(content, width, Ellipsis)
	padding := max(width-ansi.StringWidth(content), 0)
	border := m.styles.Border.Render(BoxVertical)
	return border + content + strings.Repeat(" ", padding) + border
}

// renderHeader renders the brand, the command and the run status.
func (m Model) renderHeader() string {
	width := m.layout.ContentWidth()
	brand := m.styles.Brand.Render(IconBrand + " RINGTAIL")
	status := m.renderStatus()

	used := ansi.StringWidth(brand) + ansi.StringWidth(status) + 3
	command := ansi.Truncate(m.progress.Command, max(width-used, 0), Ellipsis)
	padding := max(width-used-ansi.StringWidth(command), 0)

	return m.frame(brand + " " + m.styles.Value.Render(command) + strings.Repeat(" ", padding) + " " + status + " ")
}

func (m Model) renderStatus() string {
	if m.done == nil {
		elapsed := time.Duration(0)
		if !m.progress.Started.IsZero() {
			elapsed = m.now.Sub(m.progress.Started).Truncate(time.Second)
		}
		return m.styles.Label.Render(IconRunning+" running ") + m.styles.Value.Render(elapsed.String())
	}

	d := m.done.Duration.Truncate(time.Millisecond).String()
	switch {
	case m.done.Matched:
		return m.styles.Success.Render(IconMatched+" matched ") + m.styles.Value.Render(d)
	case m.done.Completed:
		return m.styles.Success.Render(IconComplete+" done ") + m.styles.Value.Render(d)
	default:
		return m.styles.Error.Render(IconError+" exit "+util.IntToString(m.done.ExitCode)+" ") + m.styles.Value.Render(d)
	}
}

// renderScrollArea renders the visible output lines.
func (m Model) renderScrollArea() string {
	height := m.layout.ScrollAreaHeight
	if height <= 0 {
		return ""
	}

	lines := make([]string, 0, height)
	if m.outputLines.Len() == 0 {
		for i := 0; i < height/2; i++ {
			lines = append(lines, m.frame(""))
		}
		waitMsg := m.styles.Label.Render("Waiting for output...")
		leftPad := max((m.layout.ContentWidth()-ansi.StringWidth(waitMsg))/2, 0)
		lines = append(lines, m.frame(strings.Repeat(" ", leftPad)+waitMsg))
	} else {
		start := m.startIndex()
		m.outputLines.Iterate(func(i int, line string) bool {
			if i < start {
				return true
			}
			lines = append(lines, m.frame(" "+m.styleLine(line)))
			return len(lines) < height
		})
	}

	for len(lines) < height {
		lines = append(lines, m.frame(""))
	}
	return strings.Join(lines, "\n")
}

// styleLine colours a line by its level.
func (m Model) styleLine(line string) string {
	var style lipgloss.Style
	switch output.Classify(line).Level {
	case output.LevelError:
		style = m.styles.LineError
	case output.LevelWarn:
		style = m.styles.LineWarn
	case output.LevelDebug:
		style = m.styles.LineDebug
	default:
		style = m.styles.LinePlain
	}
	return style.Render(ansi.Truncate(line, max(m.layout.ContentWidth()-1, 0), Ellipsis))
}

// renderWindowPanel renders the window fill bar and line statistics.
func (m Model) renderWindowPanel() string {
	s := m.stats
	ratio := 0.0
	if s.Capacity > 0 {
		ratio = float64(s.Held) / float64(s.Capacity)
	}
	bar := RenderProgressBar(ratio, BarWidth, m.styles.Value, m.styles.Warning)
	fill := m.styles.Label.Render("Window ") +
		m.styles.Value.Render(util.FormatBytes(s.Held)+" / "+util.FormatBytes(s.Capacity)) +
		m.styles.Label.Render("  "+InnerVertical+"  seen ") +
		m.styles.Value.Render(util.FormatBytes(int(s.BytesSeen)))

	lines := m.styles.Label.Render("Lines ") +
		m.styles.Value.Render(util.FormatNumber(m.outputLines.Len())+" / "+util.FormatNumber(m.outputLines.Cap())) +
		m.styles.Label.Render("  "+InnerVertical+"  ") +
		m.styles.Error.Render(util.FormatNumber(s.Errors)+" errors") +
		m.styles.Label.Render("  ") +
		m.styles.Warning.Render(util.FormatNumber(s.Warnings)+" warnings")
	if m.progress.Until != "" {
		lines += m.styles.Label.Render("  "+InnerVertical+"  until ") + m.styles.Value.Render(m.progress.Until)
	}

	return m.frame(" "+bar+" "+fill) + "\n" + m.frame(" "+lines)
}

// renderHelpBar renders the key bindings below the main frame.
func (m Model) renderHelpBar() string {
	bar := "  " + m.help.View(m.keys)
	if !m.outputTailing {
		bar += "  " + m.styles.Warning.Render(IconPaused+" paused")
	}
	return bar
}

// AppendOutput adds a line to the output buffer.
func (m *Model) AppendOutput(line string) {
	m.outputLines.Push(line)
}

// SetProgress sets the run information.
func (m *Model) SetProgress(p ProgressInfo) {
	m.progress = p
}
