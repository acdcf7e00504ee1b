// Package mbdisasm glues pkg/elf32 and pkg/mbdecoder together: given a
// loaded ELF image and one of its global function symbols, it walks the
// function's instruction words and feeds each decoded Record to a sink.
package mbdisasm

import (
	"fmt"

	"github.com/schaban/mbdisasm/pkg/elf32"
	"github.com/schaban/mbdisasm/pkg/mbdecoder"
)

// ErrMissingText wraps elf32.ErrMissingSection for the specific case of an
// image with no .text section, so callers can match either this sentinel or
// the elf32 one it wraps.
var ErrMissingText = fmt.Errorf("%w: image has no .text section", elf32.ErrMissingSection)

// ErrFunctionOutOfText wraps elf32.ErrOutOfRange for the specific case of a
// function symbol's address range falling outside the bounds of .text.
var ErrFunctionOutOfText = fmt.Errorf("%w: function address range falls outside .text", elf32.ErrOutOfRange)

// Sink receives one decoded Record per instruction word, in address order.
type Sink func(mbdecoder.Record)

// Functions locates every global function symbol in the image, grounded
// on dismb_init's elfi32_foreach_global_func call plus the .text lookup it
// performs once up front.
func Functions(img *elf32.Image) []elf32.Symbol {
	var funcs []elf32.Symbol
	img.ForeachGlobalFunc(func(sym elf32.Symbol) bool {
		funcs = append(funcs, sym)
		return true
	})
	return funcs
}

// FindFunction returns the global function symbol named name, and whether
// one was found. Grounded on dismb_find_func.
func FindFunction(img *elf32.Image, name string) (elf32.Symbol, bool) {
	var found elf32.Symbol
	ok := false
	img.ForeachGlobalFunc(func(sym elf32.Symbol) bool {
		if sym.Name == name {
			found = sym
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// DisassembleFunction decodes every instruction word of fn, in address
// order, passing each to sink. Grounded on dismb_func: the function's file
// offset is computed once as textOffs+(fn.Addr-textAddr), then walked word
// by word for fn.Size/4 instructions.
func DisassembleFunction(img *elf32.Image, fn elf32.Symbol, sink Sink) error {
	itext := img.FindSection(".text")
	if itext < 0 {
		return ErrMissingText
	}

	textAddr, textOffs, textSize := img.SectionAddrInfo(itext)
	if fn.Addr < textAddr || fn.Addr+fn.Size > textAddr+textSize {
		return fmt.Errorf("%w: func %q at 0x%X+0x%X, .text is 0x%X+0x%X",
			ErrFunctionOutOfText, fn.Name, fn.Addr, fn.Size, textAddr, textSize)
	}

	offs := textOffs + (fn.Addr - textAddr)
	addr := fn.Addr
	ninstrs := fn.Size / 4

	for i := uint32(0); i < ninstrs; i++ {
		code := img.ReadU32(offs)
		sink(mbdecoder.Decode(addr, code))
		offs += 4
		addr += 4
	}

	return nil
}
