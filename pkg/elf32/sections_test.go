package elf32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSection_LocatesByName(t *testing.T) {
	b := newBuilder(true)
	b.build([]sectionSpec{
		{name: ".text", addr: 0x1000, data: []byte{0xAA, 0xBB, 0xCC, 0xDD}},
		{name: ".data", addr: 0x2000, data: []byte{1, 2, 3, 4}},
	})
	img := newImage(b.data, true)

	idx := img.FindSection(".text")
	assert.GreaterOrEqual(t, idx, 0)

	addr, offs, size := img.SectionAddrInfo(idx)
	assert.Equal(t, uint32(0x1000), addr)
	assert.Equal(t, uint32(4), size)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, img.data[offs:offs+size])
}

func TestFindSection_MissingNameReturnsNegativeOne(t *testing.T) {
	b := newBuilder(true)
	b.build([]sectionSpec{
		{name: ".text", addr: 0x1000, data: []byte{0, 0}},
	})
	img := newImage(b.data, true)

	assert.Equal(t, -1, img.FindSection(".bss"))
}

func TestFindSection_EmptyTableReturnsNegativeOne(t *testing.T) {
	img := newImage(make([]byte, 0x34), true)
	assert.Equal(t, -1, img.FindSection(".text"))
}

func TestSectionAddrInfo_OutOfRangeIndexReturnsZeros(t *testing.T) {
	b := newBuilder(true)
	b.build([]sectionSpec{
		{name: ".text", addr: 0x1000, data: []byte{0, 0}},
	})
	img := newImage(b.data, true)

	addr, offs, size := img.SectionAddrInfo(99)
	assert.Zero(t, addr)
	assert.Zero(t, offs)
	assert.Zero(t, size)

	addr, offs, size = img.SectionAddrInfo(-1)
	assert.Zero(t, addr)
	assert.Zero(t, offs)
	assert.Zero(t, size)
}
