package elf32

import "encoding/binary"

// newImage builds an *Image directly from already-assembled bytes, bypassing
// Load's filesystem access.
func newImage(data []byte, littleEndian bool) *Image {
	order := binary.ByteOrder(binary.LittleEndian)
	if !littleEndian {
		order = binary.BigEndian
	}
	return &Image{data: data, order: order, littleEndian: littleEndian}
}

// builder assembles a minimal, valid 32-bit ELF image in memory for tests,
// so the package never needs on-disk fixtures.
type builder struct {
	order   binary.ByteOrder
	data    []byte
	strtab  []byte
	names   map[string]uint32
	symbols []byte
	nsyms   int
}

func newBuilder(littleEndian bool) *builder {
	order := binary.ByteOrder(binary.LittleEndian)
	dataByte := byte(elfData2LSB)
	if !littleEndian {
		order = binary.BigEndian
		dataByte = elfData2MSB
	}

	b := &builder{
		order:  order,
		names:  map[string]uint32{"": 0},
		strtab: []byte{0},
	}

	b.data = make([]byte, 0x34)
	b.data[0], b.data[1], b.data[2], b.data[3] = 0x7F, 0x45, 0x4C, 0x46
	b.data[offClass] = elfClass32
	b.data[offData] = dataByte
	return b
}

func (b *builder) putU16(offs int, v uint16) {
	for len(b.data) < offs+2 {
		b.data = append(b.data, 0)
	}
	buf := make([]byte, 2)
	b.order.PutUint16(buf, v)
	copy(b.data[offs:], buf)
}

func (b *builder) putU32(offs int, v uint32) {
	for len(b.data) < offs+4 {
		b.data = append(b.data, 0)
	}
	buf := make([]byte, 4)
	b.order.PutUint32(buf, v)
	copy(b.data[offs:], buf)
}

func (b *builder) appendBytes(buf []byte) int {
	offs := len(b.data)
	b.data = append(b.data, buf...)
	return offs
}

// addName interns name in a shared string table blob, returning its offset.
func (b *builder) addName(name string) uint32 {
	if offs, ok := b.names[name]; ok {
		return offs
	}
	offs := uint32(len(b.strtab))
	b.strtab = append(b.strtab, []byte(name)...)
	b.strtab = append(b.strtab, 0)
	b.names[name] = offs
	return offs
}

type sectionSpec struct {
	name string
	addr uint32
	data []byte
}

// section header table entry size used throughout these tests; real ELF32
// uses 0x28, but only the fields the reader touches need to be present.
const testShEntSize = 0x28

// build lays out: file header, then each section's raw bytes, then the
// section header table (with a trailing shstrtab section appended
// automatically), patching e_shoff/e_shnum/e_shentsize/e_shstrndx.
func (b *builder) build(sections []sectionSpec) []byte {
	shstrtab := map[string]uint32{}
	var shstrtabBlob []byte
	intern := func(name string) uint32 {
		if offs, ok := shstrtab[name]; ok {
			return offs
		}
		offs := uint32(len(shstrtabBlob))
		shstrtabBlob = append(shstrtabBlob, []byte(name)...)
		shstrtabBlob = append(shstrtabBlob, 0)
		shstrtab[name] = offs
		return offs
	}
	intern("")

	type placed struct {
		name string
		addr uint32
		offs uint32
		size uint32
	}

	var placements []placed
	for _, s := range sections {
		offs := uint32(b.appendBytes(s.data))
		intern(s.name)
		placements = append(placements, placed{s.name, s.addr, offs, uint32(len(s.data))})
	}

	shstrtabOffs := uint32(b.appendBytes(shstrtabBlob))
	intern(".shstrtab")
	placements = append(placements, placed{".shstrtab", 0, shstrtabOffs, uint32(len(shstrtabBlob))})

	shoff := uint32(len(b.data))
	for i, p := range placements {
		base := int(shoff) + i*testShEntSize
		for len(b.data) < base+testShEntSize {
			b.data = append(b.data, 0)
		}
		b.putU32(base+sectOffName, intern(p.name))
		b.putU32(base+sectOffAddr, p.addr)
		b.putU32(base+sectOffOffs, p.offs)
		b.putU32(base+sectOffSize, p.size)
	}

	b.putU32(offSectHeaderOffs, shoff)
	b.putU16(offSectEntSize, testShEntSize)
	b.putU16(offNumSectEnts, uint16(len(placements)))
	b.putU16(offSectNamesEntID, uint16(len(placements)-1))

	return b.data
}

// symEntry describes one .symtab entry by name/addr/size/info; buildSymtab
// assembles a list of them into the full section's bytes.
type symEntry struct {
	name string
	addr uint32
	size uint32
	info uint8
}

func (b *builder) buildSymtab(entries []symEntry) []byte {
	var out []byte
	put32 := func(v uint32) {
		buf := make([]byte, 4)
		b.order.PutUint32(buf, v)
		out = append(out, buf...)
	}
	for _, e := range entries {
		put32(b.addName(e.name))
		put32(e.addr)
		put32(e.size)
		out = append(out, e.info, 0, 0, 0)
	}
	return out
}
