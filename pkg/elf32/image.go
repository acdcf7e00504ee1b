package elf32

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/schaban/mbdisasm/pkg/utils"
)

const (
	offMagic = 0x00
	offClass = 0x04
	offData  = 0x05

	elfClass32 = 1

	elfData2LSB = 1 // little-endian file
	elfData2MSB = 2 // big-endian file

	minValidSize = 0x11 // original rejects files of size <= 0x10
)

var elfMagic = [4]byte{0x7F, 0x45, 0x4C, 0x46}

// Image is an immutable byte buffer holding a 32-bit ELF file plus its
// cached declared byte order. It never mutates the buffer after Load.
type Image struct {
	data         []byte
	order        binary.ByteOrder
	littleEndian bool

	// hostMismatch records whether the file's declared encoding differs
	// from this host's native encoding. It exists purely so callers can
	// report/log the fact (mirroring elfi32_is_le_sys/elfi32_set_swap in
	// the original); it plays no part in how bytes are actually decoded,
	// since readU16/readU32 always decode in the file's declared order.
	hostMismatch bool
}

// hostIsLittleEndian reports whether the running program reads multi-byte
// values in little-endian order. Ported from elfi32_is_le_sys: encode a
// known 4-byte tag explicitly as little-endian and compare it against the
// host's native interpretation of the same bytes.
func hostIsLittleEndian() bool {
	tag := [4]byte{'L', 'E', '3', '2'}
	var le uint32
	for i, b := range tag {
		le |= uint32(b) << (8 * i)
	}
	return binary.NativeEndian.Uint32(tag[:]) == le
}

// Valid reports whether buf starts with the ELF magic and declares
// ELFCLASS32. It performs no other validation and never panics on short
// buffers.
func Valid(buf []byte) bool {
	if len(buf) <= offClass {
		return false
	}
	if [4]byte(buf[:4]) != elfMagic {
		return false
	}
	return buf[offClass] == elfClass32
}

// Load reads the whole file at path into memory and validates it as a
// 32-bit ELF image. Files shorter than 17 bytes, or failing the magic/class
// check, are reported as ErrNotELF32.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, utils.MakeError(ErrInvalidPath, "%v", path)
		}
		return nil, utils.MakeError(ErrIO, "reading %v: %v", path, err)
	}

	if len(data) < minValidSize || !Valid(data) {
		return nil, utils.MakeError(ErrNotELF32, "%v", path)
	}

	img := &Image{data: data}

	hostLE := hostIsLittleEndian()
	switch data[offData] {
	case elfData2LSB:
		img.order = binary.LittleEndian
		img.littleEndian = true
		img.hostMismatch = !hostLE
	case elfData2MSB:
		img.order = binary.BigEndian
		img.littleEndian = false
		img.hostMismatch = hostLE
	default:
		// Undeclared/unknown encoding byte: fall back to little-endian,
		// matching the original's behavior of leaving the swap bit unset
		// for any data byte other than 1 or 2.
		img.order = binary.LittleEndian
		img.littleEndian = true
	}

	return img, nil
}

// Size returns the length of the underlying buffer in bytes.
func (img *Image) Size() int {
	return len(img.data)
}

// HostByteOrderDiffers reports whether the file's declared encoding
// differs from this host's native encoding. Informational only.
func (img *Image) HostByteOrderDiffers() bool {
	return img.hostMismatch
}

func (img *Image) String() string {
	return fmt.Sprintf("elf32.Image{size=%d, order=%v}", len(img.data), img.order)
}
