package util

import (
	"math"
	"strconv"
	"testing"
)

func TestIntToString(t *testing.T) {
	inputs := []int{0, 7, -1, 124, 130, 65536, -1234567, math.MaxInt, math.MinInt}

	for _, n := range inputs {
		if got, want := IntToString(n), strconv.Itoa(n); got != want {
			t.Errorf("IntToString(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		name   string
		format func(int) string
		input  int
		want   string
	}{
		{"number zero", FormatNumber, 0, "0"},
		{"number below a thousand", FormatNumber, 999, "999"},
		{"number default lines", FormatNumber, 10000, "10,000"},
		{"number millions", FormatNumber, 1234567, "1,234,567"},
		{"number negative", FormatNumber, -1234, "-1,234"},
		{"number max", FormatNumber, math.MaxInt, "9,223,372,036,854,775,807"},
		{"number min", FormatNumber, math.MinInt, "-9,223,372,036,854,775,808"},
		{"bytes zero", FormatBytes, 0, "0 B"},
		{"bytes small", FormatBytes, 512, "512 B"},
		{"bytes fractional kibibytes", FormatBytes, 1536, "1.5 KiB"},
		{"bytes default capacity", FormatBytes, 64 * 1024, "64 KiB"},
		{"bytes one mebibyte", FormatBytes, 1 << 20, "1.0 MiB"},
		{"bytes max capacity", FormatBytes, 1 << 30, "1.0 GiB"},
		{"bytes negative", FormatBytes, -10, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
