// Package util provides shared formatting helpers used across the ringtail CLI.
package util

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// IntToString converts an integer to its string representation without
// using the fmt package. This is useful in hot paths such as the status bar
// render, where allocation from fmt.Sprintf should be avoided.
func IntToString(n int) string {
	var buf [20]byte
	return string(strconv.AppendInt(buf[:0], int64(n), 10))
}

// FormatNumber formats an integer with thousands separators (commas).
// For example, 1234567 becomes "1,234,567".
func FormatNumber(n int) string {
	return humanize.Comma(int64(n))
}

// FormatBytes formats a byte count using IEC units, e.g. 65536 becomes
// "64 KiB". Negative counts are reported as zero.
func FormatBytes(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
