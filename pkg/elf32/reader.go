package elf32

import (
	"github.com/schaban/mbdisasm/internal/bitview"
)

// readU8 returns the byte at offs, or zero if offs is out of range.
// Ported from elfi32_read_u8.
func (img *Image) readU8(offs uint32) uint8 {
	if int(offs) >= len(img.data) {
		return 0
	}
	return img.data[offs]
}

// readU16 assembles the two bytes starting at offs into a 16-bit value,
// honoring the file's declared byte order. Out-of-range reads return zero.
// Ported from elfi32_read_u16.
func (img *Image) readU16(offs uint32) uint16 {
	if int(offs)+2 > len(img.data) {
		return 0
	}

	var word uint16
	view := bitview.Create(&word)

	lo, hi := img.data[offs], img.data[offs+1]
	if img.littleEndian {
		view.Write(uint16(lo), 0, 8)
		view.Write(uint16(hi), 8, 8)
	} else {
		view.Write(uint16(hi), 0, 8)
		view.Write(uint16(lo), 8, 8)
	}

	return word
}

// readU32 assembles the four bytes starting at offs into a 32-bit value,
// honoring the file's declared byte order. Out-of-range reads return zero.
// Ported from elfi32_read_u32.
func (img *Image) readU32(offs uint32) uint32 {
	if int(offs)+4 > len(img.data) {
		return 0
	}

	var word uint32
	view := bitview.Create(&word)

	b := img.data[offs : offs+4 : offs+4]
	little := img.littleEndian

	for i := 0; i < 4; i++ {
		bitOffset := i * bitview.BitsPerByte
		if !little {
			bitOffset = (3 - i) * bitview.BitsPerByte
		}
		view.Write(uint32(b[i]), bitOffset, bitview.BitsPerByte)
	}

	return word
}

// ReadU8 is the exported form of readU8, for callers outside this package
// that need to read raw bytes out of sections other than .symtab/.strtab
// (e.g. the disassembly driver stepping through .text).
func (img *Image) ReadU8(offs uint32) uint8 { return img.readU8(offs) }

// ReadU16 is the exported form of readU16.
func (img *Image) ReadU16(offs uint32) uint16 { return img.readU16(offs) }

// ReadU32 is the exported form of readU32.
func (img *Image) ReadU32(offs uint32) uint32 { return img.readU32(offs) }
