// Package bitview provides a small read/write view over the bits of an
// unsigned integer, used by both the ELF reader (byte/word assembly) and
// the instruction decoder (opcode/register/immediate field extraction).
package bitview

import (
	"golang.org/x/exp/constraints"
)

const BitsPerByte = 8

// Returns an all-ones bitmask of n bits of the given unsigned integer type.
func AllOnes[T constraints.Unsigned](bits int) T {
	if bits <= 0 {
		return 0
	}
	return (T(1) << bits) - T(1)
}

// BitView implements a read/write view over an unsigned integer, allowing
// manipulation of individual bit ranges without manual shifting at each
// call site.
type BitView[T constraints.Unsigned] struct {
	Bits *T
}

// Value returns the viewed unsigned int value.
func (v BitView[T]) Value() T {
	return *v.Bits
}

// Read extracts a range of bits given a first bit and a width.
func (v BitView[T]) Read(bit int, width int) T {
	mask := AllOnes[T](width)
	return (v.Value() >> bit) & mask
}

// Write copies a value into a range of bits, given the start and width of
// the range. Most significant bits of the value not fitting into the
// destination range are ignored. The target range is cleared first, so
// Write can be called more than once on overlapping state safely.
func (v BitView[T]) Write(value T, bit int, width int) {
	mask := AllOnes[T](width)
	clearedValue := value & mask
	*v.Bits = (*v.Bits) &^ (mask << bit)
	*v.Bits |= clearedValue << bit
}

// Create returns a bit view over the given unsigned int.
func Create[T constraints.Unsigned](value *T) BitView[T] {
	return BitView[T]{Bits: value}
}

// SignExtend16 sign-extends the low 16 bits of a 32-bit word to a signed
// 32-bit value, the way the MicroBlaze immediate field is interpreted.
func SignExtend16(word uint32) int32 {
	return int32(int16(uint16(word & 0xFFFF)))
}
