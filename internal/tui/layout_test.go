package tui

import "testing"

func TestCalculateLayout(t *testing.T) {
	tests := []struct {
		name             string
		width            int
		height           int
		wantTooSmall     bool
		wantScrollHeight int
	}{
		{
			name:             "standard terminal",
			width:            120,
			height:           40,
			wantScrollHeight: 32, // 40 - (1 + 2 + 1 + 4)
		},
		{
			name:             "minimum size",
			width:            60,
			height:           12,
			wantScrollHeight: 4,
		},
		{
			name:         "too narrow",
			width:        59,
			height:       40,
			wantTooSmall: true,
		},
		{
			name:         "too short",
			width:        120,
			height:       11,
			wantTooSmall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := CalculateLayout(tt.width, tt.height)

			if layout.TooSmall != tt.wantTooSmall {
				t.Errorf("TooSmall = %v, want %v", layout.TooSmall, tt.wantTooSmall)
			}
			if tt.wantTooSmall {
				if layout.TooSmallMessage == "" {
					t.Error("TooSmallMessage is empty for a too small terminal")
				}
				return
			}
			if layout.ScrollAreaHeight != tt.wantScrollHeight {
				t.Errorf("ScrollAreaHeight = %d, want %d", layout.ScrollAreaHeight, tt.wantScrollHeight)
			}

			total := layout.HeaderPanelHeight + layout.ScrollAreaHeight + layout.WindowPanelHeight + layout.HelpBarHeight + BorderHeight
			if total != tt.height {
				t.Errorf("panel heights sum to %d, want %d", total, tt.height)
			}
		})
	}
}

func TestLayout_ContentWidth(t *testing.T) {
	layout := CalculateLayout(100, 30)

	if got := layout.ContentWidth(); got != 98 {
		t.Errorf("ContentWidth() = %d, want 98", got)
	}
}

func TestLayout_MaxScrollOffset(t *testing.T) {
	layout := CalculateLayout(80, 20) // scroll area of 12 lines

	tests := []struct {
		lines int
		want  int
	}{
		{0, 0},
		{12, 0},
		{13, 1},
		{100, 88},
	}

	for _, tt := range tests {
		if got := layout.MaxScrollOffset(tt.lines); got != tt.want {
			t.Errorf("MaxScrollOffset(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}
