// Package completion detects when a watched command has printed a marker,
// such as "listening on" or "BUILD SUCCESSFUL", in its recent output window.
package completion

import (
	"strings"
	"unicode/utf8"
)

// ContextRadius is the number of bytes kept on each side of a match by
// ExtractContext.
const ContextRadius = 50

// Detector checks the output window for a fixed pattern.
type Detector struct {
	pattern string
}

// New creates a new Detector for pattern.
func New(pattern string) *Detector {
	return &Detector{pattern: pattern}
}

// Pattern returns the pattern the detector looks for.
func (d *Detector) Pattern() string {
	return d.pattern
}

// Enabled reports whether the detector has a pattern. A detector with an
// empty pattern never matches.
func (d *Detector) Enabled() bool {
	return d != nil && d.pattern != ""
}

// Check reports whether the pattern occurs anywhere in window.
// The match is case-sensitive.
func (d *Detector) Check(window string) bool {
	return d.Enabled() && strings.Contains(window, d.pattern)
}

// ExtractContext returns the last match of the pattern in window with up to
// ContextRadius bytes on either side, widened or narrowed so that it never
// starts or ends inside a multi-byte character. Returns "" when there is no
// match.
func (d *Detector) ExtractContext(window string) string {
	if !d.Enabled() {
		return ""
	}
	idx := strings.LastIndex(window, d.pattern)
	if idx == -1 {
		return ""
	}

	start := max(idx-ContextRadius, 0)
	for start < idx && !utf8.RuneStart(window[start]) {
		start++
	}

	end := min(idx+len(d.pattern)+ContextRadius, len(window))
	for end < len(window) && !utf8.RuneStart(window[end]) {
		end--
	}

	return window[start:end]
}
