package encoder

import (
	"fmt"
	"math/bits"
)

// Word is a fixed-width unsigned bit vector carried in a uint64. The owning
// Encoder masks every operand to its width, so bits above W-1 are never
// observable in outputs.
type Word uint64

// Transitions counts the bus lines that differ between a and b, i.e. the
// toggles incurred by driving b onto a bus currently holding a.
func Transitions(a, b Word) int {
	return bits.OnesCount64(uint64(a ^ b))
}

// Bin renders w as a zero-padded binary string of the given width.
func (w Word) Bin(width int) string {
	return fmt.Sprintf("%0*b", width, uint64(w))
}

// oddMask returns the alternating pattern with bit 0 set (0x55… truncated to
// width bits); evenMask the complement pattern with bit 0 clear (0xAA…).
func oddMask(width int) Word {
	const odd64 = 0x5555555555555555
	return Word(odd64) & widthMask(width)
}

func evenMask(width int) Word {
	const even64 = 0xAAAAAAAAAAAAAAAA
	return Word(even64) & widthMask(width)
}

func widthMask(width int) Word {
	if width >= 64 {
		return ^Word(0)
	}
	return Word(1)<<width - 1
}
