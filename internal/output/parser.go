// Package output provides line classification and terminal formatting for
// the output of watched commands.
package output

import (
	"encoding/json"
	"strings"
	"unicode"
)

// Level is the severity the parser assigns to an output line.
type Level int

const (
	LevelPlain Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "plain"
	}
}

// LineEvent is a classified output line.
type LineEvent struct {
	Level Level
	// Text is the message to display. For JSON log lines this is the
	// message field when one is present, otherwise the raw line.
	Text string
	// Structured is true when the line was a JSON log record.
	Structured bool
}

// OutputStats contains counts accumulated while parsing output lines.
type OutputStats struct {
	Lines    int
	Errors   int
	Warnings int
}

// keywordFields is how many leading words are inspected for a level keyword.
const keywordFields = 4

var levelKeywords = map[string]Level{
	"trace":   LevelDebug,
	"debug":   LevelDebug,
	"dbug":    LevelDebug,
	"info":    LevelInfo,
	"notice":  LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"wrn":     LevelWarn,
	"error":   LevelError,
	"err":     LevelError,
	"fatal":   LevelError,
	"panic":   LevelError,
	"crit":    LevelError,
	"failed":  LevelError,
	"fail":    LevelError,
}

// jsonRecord covers the level and message keys used by common structured
// loggers (zap, logrus, slog, zerolog).
type jsonRecord struct {
	Level    string `json:"level"`
	Lvl      string `json:"lvl"`
	Severity string `json:"severity"`
	Msg      string `json:"msg"`
	Message  string `json:"message"`
}

// Parser classifies output lines and accumulates statistics.
type Parser struct {
	stats OutputStats
}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseLine classifies a single line of output. JSON log records are
// recognised by their level key; other lines by a level keyword among
// their first few words, as in "ERROR: ...", "[warn] ..." or
// "level=info msg=...".
func (p *Parser) ParseLine(line string) LineEvent {
	p.stats.Lines++

	event := Classify(line)
	switch event.Level {
	case LevelError:
		p.stats.Errors++
	case LevelWarn:
		p.stats.Warnings++
	}
	return event
}

// Classify is ParseLine without statistics. It is safe for concurrent use.
func Classify(line string) LineEvent {
	event := LineEvent{Text: line}
	if rec, ok := parseJSONRecord(line); ok {
		event.Structured = true
		event.Level = levelFromWord(firstNonEmpty(rec.Level, rec.Lvl, rec.Severity))
		if msg := firstNonEmpty(rec.Msg, rec.Message); msg != "" {
			event.Text = msg
		}
		return event
	}
	event.Level = levelFromText(line)
	return event
}

// GetStats returns a copy of the accumulated statistics.
func (p *Parser) GetStats() *OutputStats {
	stats := p.stats
	return &stats
}

func parseJSONRecord(line string) (jsonRecord, bool) {
	var rec jsonRecord
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return rec, false
	}
	if err := json.Unmarshal([]byte(trimmed), &rec); err != nil {
		return rec, false
	}
	if rec.Level == "" && rec.Lvl == "" && rec.Severity == "" {
		return rec, false
	}
	return rec, true
}

func levelFromText(line string) Level {
	fields := 0
	start := -1
	for i, r := range line {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if lvl := levelFromWord(line[start:i]); lvl != LevelPlain {
				return lvl
			}
			start = -1
			fields++
			if fields == keywordFields {
				return LevelPlain
			}
		}
	}
	if start >= 0 {
		return levelFromWord(line[start:])
	}
	return LevelPlain
}

func levelFromWord(word string) Level {
	if len(word) > len("warning") {
		return LevelPlain
	}
	return levelKeywords[strings.ToLower(word)]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
