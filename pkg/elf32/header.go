package elf32

// File header field offsets, ported from elfi32_entry_point and its
// siblings.
const (
	offEntryPoint     = 0x18
	offProgHeaderOffs = 0x1C
	offSectHeaderOffs = 0x20
	offSectEntSize    = 0x2E
	offNumSectEnts    = 0x30
	offSectNamesEntID = 0x32
)

// EntryPoint returns the e_entry field of the file header.
func (img *Image) EntryPoint() uint32 {
	return img.readU32(offEntryPoint)
}

// ProgHeaderOffs returns the e_phoff field of the file header.
func (img *Image) ProgHeaderOffs() uint32 {
	return img.readU32(offProgHeaderOffs)
}

// SectHeaderOffs returns the e_shoff field of the file header: the byte
// offset of the section header table.
func (img *Image) SectHeaderOffs() uint32 {
	return img.readU32(offSectHeaderOffs)
}

// SectHeaderEntrySize returns the e_shentsize field: the size in bytes of
// one section header table entry.
func (img *Image) SectHeaderEntrySize() uint32 {
	return uint32(img.readU16(offSectEntSize))
}

// NumSectHeaderEntries returns the e_shnum field: the number of entries in
// the section header table.
func (img *Image) NumSectHeaderEntries() uint32 {
	return uint32(img.readU16(offNumSectEnts))
}

// SectNamesEntryID returns the e_shstrndx field: the section header table
// index of the section name string table.
func (img *Image) SectNamesEntryID() uint32 {
	return uint32(img.readU16(offSectNamesEntID))
}
