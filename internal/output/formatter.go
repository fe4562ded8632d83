package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/flashingpumpkin/ringtail/internal/util"
)

// Formatter handles the banner, window and summary output of the minimal
// (non-TUI) mode.
type Formatter struct {
	quiet   bool
	noColor bool
	writer  io.Writer
}

// BannerConfig contains the settings shown before a run starts.
type BannerConfig struct {
	Command    string
	Capacity   int
	MaxLines   int
	Until      string
	Timeout    time.Duration
	WorkingDir string
}

// RunSummary contains summary information for a finished run.
type RunSummary struct {
	Command   string
	ExitCode  int
	Duration  time.Duration
	BytesSeen int64
	Held      int
	Capacity  int
	Truncated bool
	Matched   bool
	Completed bool
	Error     error
	Stats     *OutputStats
}

// NewFormatter creates a new Formatter with the specified options.
// It checks the NO_COLOR environment variable to determine if colour output should be disabled.
func NewFormatter(quiet bool, w io.Writer) *Formatter {
	noColor := os.Getenv("NO_COLOR") != ""

	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		quiet:   quiet,
		noColor: noColor,
		writer:  w,
	}
}

// PrintBanner prints the run configuration.
func (f *Formatter) PrintBanner(cfg BannerConfig) {
	if f.quiet {
		return
	}

	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite)

	_, _ = cyan.Fprintf(f.writer, "ringtail ▸ %s\n", cfg.Command)
	_, _ = white.Fprintf(f.writer, "  Window:      %s, %s lines\n", util.FormatBytes(cfg.Capacity), util.FormatNumber(cfg.MaxLines))
	if cfg.Until != "" {
		_, _ = white.Fprintf(f.writer, "  Until:       %q\n", cfg.Until)
	}
	if cfg.Timeout > 0 {
		_, _ = white.Fprintf(f.writer, "  Timeout:     %s\n", formatDuration(cfg.Timeout))
	}
	if cfg.WorkingDir != "" && cfg.WorkingDir != "." {
		_, _ = white.Fprintf(f.writer, "  Working Dir: %s\n", cfg.WorkingDir)
	}
	_, _ = fmt.Fprintln(f.writer, "")
}

// PrintWindow prints the output window. When the window does not start at
// the beginning of the output, a dim marker line comes first.
func (f *Formatter) PrintWindow(window string, truncated bool) {
	if truncated && !f.quiet {
		dim := color.New(color.Faint)
		_, _ = dim.Fprintln(f.writer, "[earlier output discarded, showing most recent]")
	}
	_, _ = io.WriteString(f.writer, window)
	if window != "" && !strings.HasSuffix(window, "\n") {
		_, _ = fmt.Fprintln(f.writer)
	}
}

// PrintSummary prints the final summary of a run.
func (f *Formatter) PrintSummary(summary RunSummary) {
	if f.quiet {
		return
	}

	dim := color.New(color.Faint)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	_, _ = fmt.Fprintln(f.writer, "")
	_, _ = dim.Fprintf(f.writer, "─── %s | %s seen | window %s/%s",
		formatDuration(summary.Duration),
		util.FormatBytes(int(summary.BytesSeen)),
		util.FormatBytes(summary.Held),
		util.FormatBytes(summary.Capacity))
	if summary.Stats != nil && (summary.Stats.Errors > 0 || summary.Stats.Warnings > 0) {
		_, _ = dim.Fprintf(f.writer, " | %d errors, %d warnings", summary.Stats.Errors, summary.Stats.Warnings)
	}
	_, _ = dim.Fprintln(f.writer, " ───")

	switch {
	case summary.Matched:
		_, _ = green.Fprintln(f.writer, "MATCHED")
	case summary.Completed:
		_, _ = green.Fprintln(f.writer, "COMPLETED")
	case errors.Is(summary.Error, context.Canceled):
		_, _ = yellow.Fprintln(f.writer, "INTERRUPTED")
	case errors.Is(summary.Error, context.DeadlineExceeded):
		_, _ = red.Fprintln(f.writer, "TIMEOUT")
	default:
		_, _ = red.Fprintf(f.writer, "FAILED (exit %d)\n", summary.ExitCode)
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	if seconds == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
