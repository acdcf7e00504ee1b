// Package browser implements a read-only, interactive function browser
// over a loaded MicroBlaze ELF32 image: a function list pane and a
// disassembly pane, adapted from a drastic simplification of
// pkg/hw/cpu/debugger's controller/backend split -- there is no
// execution, no breakpoints, no registers or memory inspection, since
// this disassembler never runs code.
package browser

import (
	"sort"

	"github.com/schaban/mbdisasm/internal/asmfmt"
	"github.com/schaban/mbdisasm/pkg/elf32"
	"github.com/schaban/mbdisasm/pkg/mbdecoder"
	"github.com/schaban/mbdisasm/pkg/mbdisasm"
	"github.com/schaban/mbdisasm/pkg/utils"
)

// FunctionEntry is one row of the function list pane.
type FunctionEntry struct {
	Name string
	Addr uint32
	Size uint32
}

// Model holds the browsable state for one loaded image: the sorted
// function list and a cache of each function's disassembly, computed
// lazily on first selection.
type Model struct {
	img       *elf32.Image
	functions []FunctionEntry
	disasmCache map[string][]mbdecoder.Record
}

// NewModel builds a Model from every global function symbol in img,
// sorted by address for a stable, predictable list ordering.
func NewModel(img *elf32.Image) *Model {
	syms := mbdisasm.Functions(img)
	entries := make([]FunctionEntry, len(syms))
	for i, sym := range syms {
		entries[i] = FunctionEntry{Name: sym.Name, Addr: sym.Addr, Size: sym.Size}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Addr < entries[j].Addr })

	return &Model{
		img:         img,
		functions:   entries,
		disasmCache: make(map[string][]mbdecoder.Record),
	}
}

// Functions returns the function list, in display order.
func (m *Model) Functions() []FunctionEntry { return m.functions }

// Disassembly returns the decoded records for the named function,
// decoding and caching them on first access. The bool result reports
// whether the function (and a walkable .text range for it) exists.
func (m *Model) Disassembly(name string) ([]mbdecoder.Record, bool) {
	if cached, ok := m.disasmCache[name]; ok {
		return cached, true
	}

	fn, ok := mbdisasm.FindFunction(m.img, name)
	if !ok {
		return nil, false
	}

	var records []mbdecoder.Record
	if err := mbdisasm.DisassembleFunction(m.img, fn, func(r mbdecoder.Record) {
		records = append(records, r)
	}); err != nil {
		return nil, false
	}

	m.disasmCache[name] = records
	return records, true
}

// RenderDisassembly renders a function's decoded records as
// syntax-highlighted lines, one per instruction, for display in the
// disassembly pane.
func RenderDisassembly(records []mbdecoder.Record) []string {
	return utils.Map(records, asmfmt.Highlight)
}
