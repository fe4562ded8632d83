package tui

import "github.com/flashingpumpkin/ringtail/internal/ring"

// DefaultMaxOutputLines is the default maximum number of lines retained in the output buffer.
const DefaultMaxOutputLines = 10000

// RingBuffer holds the most recent output lines for the scroll area.
// When capacity is reached, new lines overwrite the oldest lines.
type RingBuffer struct {
	ring *ring.Ring[string]
}

// NewRingBuffer creates a new RingBuffer with the specified capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = DefaultMaxOutputLines
	}
	return &RingBuffer{ring: ring.New(make([]string, capacity))}
}

// Push adds a line to the buffer and reports whether the oldest line was
// evicted to make room.
func (rb *RingBuffer) Push(line string) (evicted bool) {
	evicted = rb.ring.IsFull()
	rb.ring.Push(line)
	return evicted
}

// Len returns the number of lines in the buffer.
func (rb *RingBuffer) Len() int {
	return rb.ring.Len()
}

// Cap returns the maximum capacity of the buffer.
func (rb *RingBuffer) Cap() int {
	return rb.ring.Cap()
}

// Get returns the line at the specified index (0 = oldest).
// Returns empty string if index is out of range.
func (rb *RingBuffer) Get(index int) string {
	if index < 0 || index >= rb.ring.Len() {
		return ""
	}
	return rb.ring.At(index)
}

// ToSlice returns a copy of all lines, ordered from oldest to newest.
func (rb *RingBuffer) ToSlice() []string {
	return append([]string{}, rb.ring.Extract()...)
}

// Clear removes all lines and drops their references.
func (rb *RingBuffer) Clear() {
	rb.ring.Clear()
}

// Iterate calls fn for each line in the buffer, from oldest to newest.
// If fn returns false, iteration stops early.
func (rb *RingBuffer) Iterate(fn func(index int, line string) bool) {
	for i, line := range rb.ring.All() {
		if !fn(i, line) {
			return
		}
	}
}
