package elf32

// Section header entry field offsets, relative to the start of an entry.
// Ported from elfi32_find_section / elfi32_section_addrinfo.
const (
	sectOffName = 0x00
	sectOffAddr = 0x0C
	sectOffOffs = 0x10
	sectOffSize = 0x14
)

// readCString reads a NUL-terminated string starting at offs. Out-of-range
// offsets yield an empty string.
func (img *Image) readCString(offs uint32) string {
	start := int(offs)
	if start < 0 || start >= len(img.data) {
		return ""
	}
	end := start
	for end < len(img.data) && img.data[end] != 0 {
		end++
	}
	return string(img.data[start:end])
}

// FindSection returns the section header table index whose name matches
// name, or -1 if the section table is absent, malformed, or no entry
// matches. Ported from elfi32_find_section.
func (img *Image) FindSection(name string) int {
	nsects := img.NumSectHeaderEntries()
	if nsects == 0 {
		return -1
	}

	hoffs := img.SectHeaderOffs()
	esize := img.SectHeaderEntrySize()
	if hoffs == 0 || esize == 0 {
		return -1
	}

	nid := img.SectNamesEntryID()
	if nid >= nsects {
		return -1
	}

	nameStrsOffs := img.readU32(hoffs + nid*esize + sectOffOffs)
	if nameStrsOffs == 0 {
		return -1
	}

	for i := uint32(0); i < nsects; i++ {
		nameOffs := img.readU32(hoffs + i*esize + sectOffName)
		if img.readCString(nameStrsOffs+nameOffs) == name {
			return int(i)
		}
	}

	return -1
}

// SectionAddrInfo returns the load address, file offset, and size of the
// section at the given section header table index. A negative or
// out-of-range index yields all zeros. Ported from
// elfi32_section_addrinfo.
func (img *Image) SectionAddrInfo(isect int) (addr, offs, size uint32) {
	nsects := img.NumSectHeaderEntries()
	if isect < 0 || uint32(isect) >= nsects {
		return 0, 0, 0
	}

	hoffs := img.SectHeaderOffs()
	esize := img.SectHeaderEntrySize()
	infoTop := hoffs + uint32(isect)*esize

	addr = img.readU32(infoTop + sectOffAddr)
	offs = img.readU32(infoTop + sectOffOffs)
	size = img.readU32(infoTop + sectOffSize)
	return addr, offs, size
}
