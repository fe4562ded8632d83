package completion

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNew(t *testing.T) {
	d := New("READY")

	if d == nil {
		t.Fatal("New() returned nil")
	}
	if d.Pattern() != "READY" {
		t.Errorf("Pattern() = %q; want %q", d.Pattern(), "READY")
	}
	if !d.Enabled() {
		t.Error("Enabled() = false; want true")
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		window  string
		want    bool
	}{
		{"at start", "DONE", "DONE: task completed", true},
		{"in middle", "DONE", "Processing... DONE and finished", true},
		{"at end", "DONE", "All tasks completed: DONE", true},
		{"absent", "DONE", "Still processing...", false},
		{"case sensitive", "DONE", "done Done", false},
		{"multiline", "COMPLETE", "line 1\nline 2: COMPLETE\nline 3", true},
		{"empty window", "DONE", "", false},
		{"empty pattern never matches", "", "any output", false},
		{"multi-byte pattern", "✓ ok", "tests ✓ ok", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.pattern).Check(tt.window); got != tt.want {
				t.Errorf("Check(%q) = %t; want %t", tt.window, got, tt.want)
			}
		})
	}
}

func TestCheck_NilDetector(t *testing.T) {
	var d *Detector

	if d.Check("anything") {
		t.Error("Check() on nil detector = true; want false")
	}
	if d.ExtractContext("anything") != "" {
		t.Error("ExtractContext() on nil detector returned context; want empty")
	}
}

func TestExtractContext(t *testing.T) {
	fifty := strings.Repeat("0123456789", 5)

	tests := []struct {
		name    string
		pattern string
		window  string
		want    string
	}{
		{"not found", "MISSING", "no marker here", ""},
		{"empty window", "ANY", "", ""},
		{"empty pattern", "", "text", ""},
		{"short window returned whole", "OK", "status: OK done", "status: OK done"},
		{"exact boundaries", "X", fifty + "X" + fifty, fifty + "X" + fifty},
		{"limits before", "M", "abc" + fifty + "M", fifty + "M"},
		{"limits after", "M", "M" + fifty + "abc", "M" + fifty},
		{"uses last match", "M", "M first\nM second", "M first\nM second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.pattern).ExtractContext(tt.window); got != tt.want {
				t.Errorf("ExtractContext() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestExtractContext_DoesNotSplitCharacters(t *testing.T) {
	// 25 two-byte characters put the 50-byte boundary in a clean spot, so
	// shift by one ASCII byte to force the cut into the middle of "é".
	before := "x" + strings.Repeat("é", 25)
	after := strings.Repeat("é", 25) + "x"
	window := before + "MARK" + after

	got := New("MARK").ExtractContext(window)

	if !utf8.ValidString(got) {
		t.Fatalf("ExtractContext() = %q is not valid UTF-8", got)
	}
	if !strings.Contains(got, "MARK") {
		t.Errorf("ExtractContext() = %q does not contain the match", got)
	}
	if len(got) > ContextRadius*2+len("MARK") {
		t.Errorf("len(ExtractContext()) = %d; want at most %d", len(got), ContextRadius*2+len("MARK"))
	}
}
