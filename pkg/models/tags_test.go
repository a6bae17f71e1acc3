package models

import (
	"testing"
)

func TestChipColor(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"same tag", "cpu", "cpu"},
		{"case insensitive", "CPU", "cpu"},
		{"surrounding spaces", "  disk space ", "disk space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ChipColor(tt.a) != ChipColor(tt.b) {
				t.Errorf("ChipColor(%q) = %q, ChipColor(%q) = %q, want equal",
					tt.a, ChipColor(tt.a), tt.b, ChipColor(tt.b))
			}
		})
	}
}

func TestChipColorInPalette(t *testing.T) {
	for _, tag := range []string{"", "host", "device_name", "memory space"} {
		color := ChipColor(tag)
		found := false
		for _, c := range ChipPalette {
			if c == color {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ChipColor(%q) = %q, not in palette", tag, color)
		}
	}
}
