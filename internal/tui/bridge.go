package tui

import (
	"bytes"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/flashingpumpkin/ringtail/internal/output"
	"golang.org/x/time/rate"
)

const (
	// statsInterval is the minimum time between StatsMsg updates.
	statsInterval = 100 * time.Millisecond

	// maxPendingLine is the longest partial line held before it is sent
	// without waiting for a newline.
	maxPendingLine = 64 * 1024

	// tabWidth is the number of spaces a tab expands to.
	tabWidth = 4
)

// Sender is the part of tea.Program the bridge needs.
type Sender interface {
	Send(msg tea.Msg)
}

// StatsSource reports the current output window fill.
type StatsSource func() (held, capacity int, seen int64)

// Bridge connects the command's output stream to the bubbletea TUI.
// It implements io.Writer and sends messages to the tea.Program.
type Bridge struct {
	program Sender
	parser  *output.Parser
	limiter *rate.Limiter
	source  StatsSource

	mu      sync.Mutex
	pending []byte
}

// NewBridge creates a new Bridge sending to program.
func NewBridge(program Sender) *Bridge {
	return &Bridge{
		program: program,
		parser:  output.NewParser(),
		limiter: rate.NewLimiter(rate.Every(statsInterval), 1),
	}
}

// SetStatsSource sets the function used to fill window statistics.
func (b *Bridge) SetStatsSource(fn StatsSource) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.source = fn
}

// Write implements io.Writer. Each complete line becomes an OutputLineMsg;
// a partial line is held until its newline arrives.
func (b *Bridge) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = append(b.pending, p...)
	data := b.pending
	for {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}
		b.sendLine(string(data[:idx]))
		data = data[idx+1:]
	}
	if len(data) > maxPendingLine {
		b.sendLine(string(data))
		data = data[:0]
	}
	b.pending = append(b.pending[:0], data...)

	if b.limiter.Allow() {
		b.sendStats()
	}
	return len(p), nil
}

// Flush sends any held partial line and a final StatsMsg.
func (b *Bridge) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.pending) > 0 {
		b.sendLine(string(b.pending))
		b.pending = b.pending[:0]
	}
	b.sendStats()
}

// GetStats returns the line statistics accumulated so far.
func (b *Bridge) GetStats() *output.OutputStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.parser.GetStats()
}

func (b *Bridge) sendLine(line string) {
	line = strings.TrimSuffix(line, "\r")
	line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
	b.parser.ParseLine(line)
	b.program.Send(OutputLineMsg(line))
}

func (b *Bridge) sendStats() {
	stats := b.parser.GetStats()
	msg := StatsMsg{
		Lines:    stats.Lines,
		Errors:   stats.Errors,
		Warnings: stats.Warnings,
	}
	if b.source != nil {
		msg.Held, msg.Capacity, msg.BytesSeen = b.source()
	}
	b.program.Send(msg)
}
