package tui

import (
	"slices"
	"testing"

	"github.com/flashingpumpkin/ringtail/internal/util"
)

func TestRingBuffer_NewRingBuffer(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantCap  int
	}{
		{"normal capacity", 100, 100},
		{"zero capacity defaults", 0, DefaultMaxOutputLines},
		{"negative capacity defaults", -1, DefaultMaxOutputLines},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRingBuffer(tt.capacity)
			if rb.Cap() != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", rb.Cap(), tt.wantCap)
			}
			if rb.Len() != 0 {
				t.Errorf("Len() = %d, want 0 for new buffer", rb.Len())
			}
		})
	}
}

func TestRingBuffer_Push(t *testing.T) {
	tests := []struct {
		name        string
		capacity    int
		pushes      []string
		want        []string
		wantEvicted int
	}{
		{"below capacity", 5, []string{"a", "b", "c"}, []string{"a", "b", "c"}, 0},
		{"exactly full", 3, []string{"a", "b", "c"}, []string{"a", "b", "c"}, 0},
		{"one over", 3, []string{"a", "b", "c", "d"}, []string{"b", "c", "d"}, 1},
		{"many over", 3, []string{"a", "b", "c", "d", "e", "f", "g"}, []string{"e", "f", "g"}, 4},
		{"capacity one", 1, []string{"a", "b"}, []string{"b"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRingBuffer(tt.capacity)
			evicted := 0
			for _, s := range tt.pushes {
				if rb.Push(s) {
					evicted++
				}
			}

			if got := rb.ToSlice(); !slices.Equal(got, tt.want) {
				t.Errorf("ToSlice() = %v, want %v", got, tt.want)
			}
			if evicted != tt.wantEvicted {
				t.Errorf("evictions = %d, want %d", evicted, tt.wantEvicted)
			}
			for i, want := range tt.want {
				if got := rb.Get(i); got != want {
					t.Errorf("Get(%d) = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestRingBuffer_Get_OutOfRange(t *testing.T) {
	rb := NewRingBuffer(3)
	rb.Push("a")

	for _, idx := range []int{-1, 1, 3, 100} {
		if got := rb.Get(idx); got != "" {
			t.Errorf("Get(%d) = %q, want empty string", idx, got)
		}
	}
}

func TestRingBuffer_ToSlice_ReturnsCopy(t *testing.T) {
	rb := NewRingBuffer(3)
	rb.Push("a")
	rb.Push("b")

	s := rb.ToSlice()
	s[0] = "changed"

	if rb.Get(0) != "a" {
		t.Errorf("Get(0) = %q after modifying ToSlice() result, want %q", rb.Get(0), "a")
	}
	if got := NewRingBuffer(2).ToSlice(); got == nil || len(got) != 0 {
		t.Errorf("ToSlice() on empty buffer = %#v, want empty non-nil slice", got)
	}
}

func TestRingBuffer_GetAfterToSliceAndPush(t *testing.T) {
	rb := NewRingBuffer(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		rb.Push(s)
	}
	_ = rb.ToSlice()
	rb.Push("e")

	want := []string{"c", "d", "e"}
	for i, w := range want {
		if got := rb.Get(i); got != w {
			t.Errorf("Get(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestRingBuffer_Clear(t *testing.T) {
	rb := NewRingBuffer(3)
	rb.Push("a")
	rb.Push("b")

	rb.Clear()

	if rb.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", rb.Len())
	}
	if rb.Cap() != 3 {
		t.Errorf("Cap() = %d after Clear, want 3", rb.Cap())
	}

	rb.Push("c")
	if rb.Get(0) != "c" {
		t.Errorf("Get(0) = %q after Clear and Push, want %q", rb.Get(0), "c")
	}
}

func TestRingBuffer_Iterate(t *testing.T) {
	rb := NewRingBuffer(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		rb.Push(s)
	}

	var got []string
	var indexes []int
	rb.Iterate(func(i int, line string) bool {
		indexes = append(indexes, i)
		got = append(got, line)
		return true
	})

	if !slices.Equal(got, []string{"b", "c", "d"}) {
		t.Errorf("Iterate() lines = %v, want [b c d]", got)
	}
	if !slices.Equal(indexes, []int{0, 1, 2}) {
		t.Errorf("Iterate() indexes = %v, want [0 1 2]", indexes)
	}
}

func TestRingBuffer_Iterate_EarlyStop(t *testing.T) {
	rb := NewRingBuffer(5)
	for _, s := range []string{"a", "b", "c"} {
		rb.Push(s)
	}

	count := 0
	rb.Iterate(func(int, string) bool {
		count++
		return count < 2
	})

	if count != 2 {
		t.Errorf("Iterate() visited %d lines, want 2", count)
	}
}

func TestRingBuffer_MemoryBound(t *testing.T) {
	rb := NewRingBuffer(100)

	for i := 0; i < 10000; i++ {
		rb.Push("line " + util.IntToString(i))
	}

	if rb.Len() != 100 {
		t.Errorf("Len() = %d, want 100", rb.Len())
	}
	if rb.Get(0) != "line 9900" {
		t.Errorf("Get(0) = %q, want %q", rb.Get(0), "line 9900")
	}
	if rb.Get(99) != "line 9999" {
		t.Errorf("Get(99) = %q, want %q", rb.Get(99), "line 9999")
	}
}
