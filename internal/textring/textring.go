// Package textring provides a byte ring buffer for UTF-8 text that keeps the
// most recent output of a stream, such as a log sink or a terminal display,
// in fixed memory.
//
// Writes are byte-granular and may cut a multi-byte character when the ring
// wraps. Extract never returns such a fragment: the window is trimmed forward
// to the first complete character. Invalid bytes written into the ring are
// never returned either; the window starts after the last of them.
package textring

import (
	"unicode/utf8"
	"unsafe"

	"github.com/flashingpumpkin/ringtail/internal/ring"
)

// Ring is a text ring buffer backed by a fixed-length byte slice.
//
// Ring implements io.Writer and io.StringWriter, so fmt.Fprintf can write
// into it directly. Like ring.Ring, it is not safe for concurrent use.
type Ring struct {
	*ring.Ring[byte]
}

// New returns an empty Ring that owns storage. The storage is zeroed and its
// length is the capacity in bytes, which is not the number of characters the
// ring can hold.
func New(storage []byte) *Ring {
	return &Ring{Ring: ring.New(storage)}
}

// WriteString appends the bytes of s, evicting the oldest bytes once the ring
// is full. It always returns len(s) and a nil error.
func (t *Ring) WriteString(s string) (int, error) {
	return t.Ring.Write(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// TryWriteString appends s only if all of its bytes fit in the remaining
// space, returning a *errors.CapacityError otherwise.
func (t *Ring) TryWriteString(s string) error {
	return t.Ring.TryWrite(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Extract returns the buffered text, oldest first, starting at the first
// complete character after any invalid UTF-8. The result is always valid
// UTF-8.
//
// The returned string shares memory with the ring: the next Write,
// WriteString, Push or Clear changes its contents in place. Use it only for
// immediate inspection and never store it in a map, a struct or a channel,
// or keep it past the next write. Use String for a copy that can be
// retained.
func (t *Ring) Extract() string {
	b := t.window()
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// String returns a copy of Extract.
func (t *Ring) String() string {
	return string(t.window())
}

// window linearizes the ring, trims partial characters from both ends and
// drops everything up to the last invalid sequence.
func (t *Ring) window() []byte {
	b := t.Ring.Extract()
	b = b[LeadIndex(b):]
	b = TrimIncomplete(b)
	if !utf8.Valid(b) {
		b = b[ValidStart(b):]
	}
	return b
}
