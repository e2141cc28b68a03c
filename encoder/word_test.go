package encoder

import "testing"

func TestTransitions(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Word
		expected int
	}{
		{"equal words", 0xCA, 0xCA, 0},
		{"one bit", 0b1000, 0b0000, 1},
		{"full toggle W=8", 0xFF, 0x00, 8},
		{"alternating", 0x55, 0xAA, 8},
		{"spec vector", 0xCA, 0x00, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transitions(tt.a, tt.b); got != tt.expected {
				t.Errorf("Transitions(%#x, %#x) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestMasks(t *testing.T) {
	tests := []struct {
		width int
		odd   Word
		even  Word
		mask  Word
	}{
		{1, 0x1, 0x0, 0x1},
		{4, 0x5, 0xA, 0xF},
		{8, 0x55, 0xAA, 0xFF},
		{16, 0x5555, 0xAAAA, 0xFFFF},
		{64, 0x5555555555555555, 0xAAAAAAAAAAAAAAAA, ^Word(0)},
	}

	for _, tt := range tests {
		if got := oddMask(tt.width); got != tt.odd {
			t.Errorf("oddMask(%d) = %#x, want %#x", tt.width, got, tt.odd)
		}
		if got := evenMask(tt.width); got != tt.even {
			t.Errorf("evenMask(%d) = %#x, want %#x", tt.width, got, tt.even)
		}
		if got := widthMask(tt.width); got != tt.mask {
			t.Errorf("widthMask(%d) = %#x, want %#x", tt.width, got, tt.mask)
		}
		// The two alternating patterns partition the bus lines.
		if oddMask(tt.width)^evenMask(tt.width) != tt.mask {
			t.Errorf("odd^even != mask for width %d", tt.width)
		}
	}
}

func TestWord_Bin(t *testing.T) {
	if got := Word(0xCA).Bin(8); got != "11001010" {
		t.Errorf("Bin(8) = %q, want %q", got, "11001010")
	}
	if got := Word(0x1).Bin(4); got != "0001" {
		t.Errorf("Bin(4) = %q, want %q", got, "0001")
	}
}
