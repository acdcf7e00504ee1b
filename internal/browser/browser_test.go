package browser

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schaban/mbdisasm/pkg/elf32"
)

// buildSyntheticELF mirrors pkg/mbdisasm's test helper: a minimal
// little-endian ELF32 object with one .text section and one global
// function symbol covering it.
func buildSyntheticELF(t *testing.T, textAddr uint32, textWords []uint32, funcName string) *elf32.Image {
	t.Helper()
	order := binary.LittleEndian

	var textBytes []byte
	for _, w := range textWords {
		buf := make([]byte, 4)
		order.PutUint32(buf, w)
		textBytes = append(textBytes, buf...)
	}

	var strtab []byte
	strtab = append(strtab, 0)
	nameOffs := uint32(len(strtab))
	strtab = append(strtab, []byte(funcName)...)
	strtab = append(strtab, 0)

	var symtab []byte
	put32 := func(v uint32) {
		buf := make([]byte, 4)
		order.PutUint32(buf, v)
		symtab = append(symtab, buf...)
	}
	put32(nameOffs)
	put32(textAddr)
	put32(uint32(len(textBytes)))
	symtab = append(symtab, 0x12, 0, 0, 0)

	data := make([]byte, 0x34)
	data[0], data[1], data[2], data[3] = 0x7F, 0x45, 0x4C, 0x46
	data[4] = 1
	data[5] = 1

	type section struct {
		name string
		addr uint32
		raw  []byte
	}
	sections := []section{
		{".text", textAddr, textBytes},
		{".symtab", 0, symtab},
		{".strtab", 0, strtab},
	}

	shstrtab := []byte{0}
	interned := map[string]uint32{"": 0}
	intern := func(name string) uint32 {
		if offs, ok := interned[name]; ok {
			return offs
		}
		offs := uint32(len(shstrtab))
		shstrtab = append(shstrtab, []byte(name)...)
		shstrtab = append(shstrtab, 0)
		interned[name] = offs
		return offs
	}

	type placed struct {
		name string
		addr uint32
		offs uint32
		size uint32
	}
	var placements []placed
	for _, s := range sections {
		offs := uint32(len(data))
		data = append(data, s.raw...)
		intern(s.name)
		placements = append(placements, placed{s.name, s.addr, offs, uint32(len(s.raw))})
	}
	shstrtabOffs := uint32(len(data))
	data = append(data, shstrtab...)
	intern(".shstrtab")
	placements = append(placements, placed{".shstrtab", 0, shstrtabOffs, uint32(len(shstrtab))})

	const entSize = 0x28
	shoff := uint32(len(data))
	for i, p := range placements {
		base := int(shoff) + i*entSize
		for len(data) < base+entSize {
			data = append(data, 0)
		}
		put := func(fieldOffs int, v uint32) {
			buf := make([]byte, 4)
			order.PutUint32(buf, v)
			copy(data[base+fieldOffs:], buf)
		}
		put(0x00, intern(p.name))
		put(0x0C, p.addr)
		put(0x10, p.offs)
		put(0x14, p.size)
	}

	putHdr32 := func(offs int, v uint32) {
		buf := make([]byte, 4)
		order.PutUint32(buf, v)
		copy(data[offs:], buf)
	}
	putHdr16 := func(offs int, v uint16) {
		buf := make([]byte, 2)
		order.PutUint16(buf, v)
		copy(data[offs:], buf)
	}
	putHdr32(0x20, shoff)
	putHdr16(0x2E, entSize)
	putHdr16(0x30, uint16(len(placements)))
	putHdr16(0x32, uint16(len(placements)-1))

	path := filepath.Join(t.TempDir(), "synthetic.elf")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	img, err := elf32.Load(path)
	require.NoError(t, err)
	return img
}

func TestNewModel_ListsFunctionEntry(t *testing.T) {
	img := buildSyntheticELF(t, 0x2000, []uint32{0, 0}, "only_func")
	model := NewModel(img)

	funcs := model.Functions()
	require.Len(t, funcs, 1)
	assert.Equal(t, "only_func", funcs[0].Name)
	assert.Equal(t, uint32(0x2000), funcs[0].Addr)
	assert.Equal(t, uint32(8), funcs[0].Size)
}

func TestModel_DisassemblyCachesResult(t *testing.T) {
	img := buildSyntheticELF(t, 0x1000, []uint32{
		(0 << 26) | (3 << 21) | (4 << 16) | (5 << 11),
	}, "fn")
	model := NewModel(img)

	records, ok := model.Disassembly("fn")
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "add", records[0].Mnemonic)

	again, ok := model.Disassembly("fn")
	require.True(t, ok)
	assert.Same(t, &records[0], &again[0])
}

func TestModel_DisassemblyUnknownNameNotFound(t *testing.T) {
	img := buildSyntheticELF(t, 0x1000, []uint32{0}, "fn")
	model := NewModel(img)

	_, ok := model.Disassembly("nope")
	assert.False(t, ok)
}

func TestRenderDisassembly_OneLinePerRecord(t *testing.T) {
	img := buildSyntheticELF(t, 0x1000, []uint32{
		(0 << 26) | (3 << 21) | (4 << 16) | (5 << 11),
		(8 << 26) | (1 << 21) | (2 << 16) | 16,
	}, "fn")
	model := NewModel(img)

	records, ok := model.Disassembly("fn")
	require.True(t, ok)

	lines := RenderDisassembly(records)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "add")
	assert.Contains(t, lines[1], "addi")
}
