package tui

import "time"

// OutputLineMsg represents a new output line to display.
type OutputLineMsg string

// ProgressMsg represents updated run information.
type ProgressMsg ProgressInfo

// StatsMsg carries the window fill and line statistics.
type StatsMsg struct {
	Held      int   // Bytes currently in the output window
	Capacity  int   // Window capacity in bytes
	BytesSeen int64 // Total bytes read from the command
	Lines     int
	Errors    int
	Warnings  int
}

// DoneMsg reports that the watched command has finished.
type DoneMsg struct {
	ExitCode  int
	Matched   bool
	Completed bool
	Err       error
	Duration  time.Duration
}

// tickMsg refreshes the elapsed time in the header.
type tickMsg time.Time
