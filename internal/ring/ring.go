// Package ring provides a fixed-capacity circular buffer that keeps the most
// recent elements written to it in caller-supplied storage.
//
// A Ring never grows. Once full, each write overwrites the oldest element.
// The buffered contents are linearized lazily: Extract rotates the storage in
// place so the oldest element sits at index 0 and returns a view of it.
package ring

import (
	"iter"
	"slices"

	"github.com/flashingpumpkin/ringtail/internal/errors"
)

// Ring is a circular buffer of T backed by a fixed-length slice.
//
// A Ring is not safe for concurrent use. Extract mutates the storage layout,
// so it needs the same exclusive access as Write.
type Ring[T any] struct {
	buf     []T
	end     int  // Index of the next slot to write; Cap() only right after rotating a full ring
	wrapped bool // Whether a write has overwritten a slot since the last rotate
}

// New returns an empty Ring that owns storage. The storage is zeroed and its
// length becomes the ring's capacity. The caller must not use storage again.
//
// Zero-length storage yields a ring that discards every write.
func New[S ~[]T, T any](storage S) *Ring[T] {
	r := &Ring[T]{buf: storage}
	r.Clear()
	return r
}

// Clear empties the ring and resets every slot to the zero value of T.
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.end = 0
	r.wrapped = false
}

// Len returns the number of elements currently held.
func (r *Ring[T]) Len() int {
	if r.wrapped {
		return len(r.buf)
	}
	return r.end
}

// Cap returns the maximum number of elements the ring can hold.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.end == 0 && !r.wrapped
}

// IsFull reports whether the next write will evict an element.
// A zero-capacity ring is always full.
func (r *Ring[T]) IsFull() bool {
	return r.Len() == len(r.buf)
}

// SpaceRemaining returns how many elements can be written before the oldest
// element is evicted.
func (r *Ring[T]) SpaceRemaining() int {
	return len(r.buf) - r.Len()
}

// Push appends a single element, evicting the oldest one if the ring is full.
func (r *Ring[T]) Push(item T) {
	if len(r.buf) == 0 {
		return
	}
	r.resume()
	r.buf[r.end] = item
	r.advance(1)
}

// Write appends items in order. Items beyond the capacity evict the oldest
// elements, so only the last Cap() items of a long write survive.
//
// Write never fails; it returns len(items) and a nil error so that a byte
// ring satisfies io.Writer.
func (r *Ring[T]) Write(items []T) (int, error) {
	n := len(items)
	c := len(r.buf)
	if c == 0 || n == 0 {
		return n, nil
	}
	r.resume()

	// Everything but the last c items would be overwritten within this call.
	// Skipping them moves the cursor exactly as writing them would.
	if n > c {
		skip := n - c
		r.end = (r.end + skip) % c
		r.wrapped = true
		items = items[skip:]
	}

	for len(items) > 0 {
		k := copy(r.buf[r.end:], items)
		items = items[k:]
		r.advance(k)
	}
	return n, nil
}

// TryWrite appends items only if all of them fit in the remaining space.
// Otherwise nothing is written and a *errors.CapacityError is returned.
func (r *Ring[T]) TryWrite(items []T) error {
	if space := r.SpaceRemaining(); len(items) > space {
		return &errors.CapacityError{Requested: len(items), Available: space}
	}
	_, err := r.Write(items)
	return err
}

// Extract returns the held elements in write order, oldest first.
//
// The returned slice aliases the ring's storage and is only valid until the
// next call that mutates the ring. The first call after a wrap rotates the
// storage in place; later calls are O(1) until the next write.
func (r *Ring[T]) Extract() []T {
	r.rotate()
	return r.buf[:r.end:r.end]
}

// At returns the i-th held element, oldest first, without linearizing the
// storage. It panics if i is out of range, like a slice index.
func (r *Ring[T]) At(i int) T {
	if i < 0 || i >= r.Len() {
		panic("ring: index out of range")
	}
	if r.wrapped {
		i = (r.end + i) % len(r.buf)
	}
	return r.buf[i]
}

// All returns an iterator over the held elements, oldest first, with their
// logical index. The ring must not be written to during iteration.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range r.Len() {
			if !yield(i, r.At(i)) {
				return
			}
		}
	}
}

// resume folds the state left by rotating a full ring (end == Cap(), not
// wrapped) back into the equivalent wrapped state with the cursor at slot 0,
// where the oldest element now lives.
func (r *Ring[T]) resume() {
	if r.end == len(r.buf) && r.end > 0 {
		r.end = 0
		r.wrapped = true
	}
}

// advance moves the write cursor k slots forward. k never exceeds the
// distance to the end of the storage.
func (r *Ring[T]) advance(k int) {
	r.end += k
	if r.end >= len(r.buf) {
		r.wrapped = true
		r.end = 0
	}
}

// rotate linearizes a wrapped ring so that storage[0:Len()] holds the
// elements oldest first. It is a no-op on an unwrapped ring.
func (r *Ring[T]) rotate() {
	if !r.wrapped {
		return
	}
	rotateLeft(r.buf, r.end)
	r.end = len(r.buf)
	r.wrapped = false
}

// rotateLeft rotates s left by k positions in place using three reversals.
func rotateLeft[T any](s []T, k int) {
	if k <= 0 || k >= len(s) {
		return
	}
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}
