package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"
)

// ellipsis marks a line cut to the display width.
const ellipsis = "…"

// StreamProcessor frames a byte stream into lines and writes them to a
// terminal, coloured by level. Partial lines are carried across writes until
// a newline or Flush.
type StreamProcessor struct {
	mu       sync.Mutex
	writer   io.Writer
	parser   *Parser
	pending  []byte
	lineNo   int
	numbered bool
	width    int
}

// NewStreamProcessor creates a new StreamProcessor writing to w.
func NewStreamProcessor(w io.Writer) *StreamProcessor {
	return &StreamProcessor{
		writer: w,
		parser: NewParser(),
	}
}

// SetLineNumbers enables a line number gutter.
func (sp *StreamProcessor) SetLineNumbers(on bool) {
	sp.numbered = on
}

// SetWidth sets the display width lines are truncated to. Zero disables
// truncation.
func (sp *StreamProcessor) SetWidth(width int) {
	sp.width = max(width, 0)
}

// Write implements io.Writer for use with executor streaming.
func (sp *StreamProcessor) Write(p []byte) (int, error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	data := p
	if len(sp.pending) > 0 {
		sp.pending = append(sp.pending, p...)
		data = sp.pending
	}

	for {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}
		sp.processLine(string(data[:idx]))
		data = data[idx+1:]
	}

	// data may alias p or pending, so copy before keeping it.
	sp.pending = append(sp.pending[:0], data...)
	return len(p), nil
}

// Flush writes any buffered partial line.
func (sp *StreamProcessor) Flush() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if len(sp.pending) == 0 {
		return
	}
	sp.processLine(string(sp.pending))
	sp.pending = sp.pending[:0]
}

// ProcessLine writes a single complete line.
func (sp *StreamProcessor) ProcessLine(line string) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.processLine(line)
}

// GetStats returns the accumulated statistics.
func (sp *StreamProcessor) GetStats() *OutputStats {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.parser.GetStats()
}

func (sp *StreamProcessor) processLine(line string) {
	line = strings.TrimSuffix(line, "\r")
	sp.lineNo++
	event := sp.parser.ParseLine(line)

	text := event.Text
	if sp.width > 0 {
		avail := sp.width
		if sp.numbered {
			avail -= gutterWidth
		}
		text = TruncateWidth(text, avail)
	}

	if sp.numbered {
		dim := color.New(color.Faint)
		_, _ = dim.Fprintf(sp.writer, "%6d │ ", sp.lineNo)
	}

	switch event.Level {
	case LevelError:
		red := color.New(color.FgRed)
		_, _ = red.Fprintln(sp.writer, text)
	case LevelWarn:
		yellow := color.New(color.FgYellow)
		_, _ = yellow.Fprintln(sp.writer, text)
	case LevelDebug:
		dim := color.New(color.Faint)
		_, _ = dim.Fprintln(sp.writer, text)
	default:
		_, _ = fmt.Fprintln(sp.writer, text)
	}
}

// gutterWidth is the display width of the "%6d │ " line number prefix.
const gutterWidth = 9

// TruncateWidth cuts s to at most width terminal cells, never splitting a
// grapheme cluster, and marks the cut with an ellipsis.
func TruncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var b strings.Builder
	used := 0
	limit := width - 1 // room for the ellipsis
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > limit {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	b.WriteString(ellipsis)
	return b.String()
}
