package models

import "testing"

func TestDefaultColor(t *testing.T) {
	if got := DefaultColor(0); got != ColorPalette[0] {
		t.Errorf("DefaultColor(0) = %q, want %q", got, ColorPalette[0])
	}
	// Cycles past the end of the palette.
	if got := DefaultColor(len(ColorPalette) + 2); got != ColorPalette[2] {
		t.Errorf("DefaultColor(%d) = %q, want %q", len(ColorPalette)+2, got, ColorPalette[2])
	}
	if got := DefaultColor(-1); got != ColorPalette[0] {
		t.Errorf("DefaultColor(-1) = %q, want %q", got, ColorPalette[0])
	}
}
