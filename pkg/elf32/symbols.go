package elf32

// Symbol table entry layout, ported from sym_foreach_sub.
const (
	symEntrySize   = 0x10
	symOffName     = 0x00
	symOffValue    = 0x04
	symOffSize     = 0x08
	symOffInfo     = 0x0C
	bindGlobalFunc = 0x12 // STB_GLOBAL<<4 | STT_FUNC, packed into st_info
)

// Symbol is one entry of the .symtab section.
type Symbol struct {
	Index int
	Name  string
	Addr  uint32
	Size  uint32
	Info  uint8
}

// IsGlobalFunc reports whether the symbol is bound globally and typed as a
// function (STB_GLOBAL, STT_FUNC).
func (s Symbol) IsGlobalFunc() bool {
	return s.Info == bindGlobalFunc
}

// VisitFn is called for each symbol visited by ForeachSym/ForeachGlobalFunc.
// Returning false stops the walk early.
type VisitFn func(sym Symbol) bool

// foreachSymMode walks .symtab, calling visit for entries matching mode
// (allSyms walks every entry, globalFuncsOnly walks only global function
// entries). It returns the number of matching entries walked; when visit
// stops the walk early, the entry it stopped on is counted and later ones
// are not. A nil visitor still walks the full table purely to count,
// mirroring sym_foreach_sub's symCnt bookkeeping in the original.
func (img *Image) foreachSymMode(globalFuncsOnly bool, visit VisitFn) int {
	isymtab := img.FindSection(".symtab")
	istrtab := img.FindSection(".strtab")
	if isymtab < 0 || istrtab < 0 {
		return 0
	}

	_, symtabOffs, symtabSize := img.SectionAddrInfo(isymtab)
	_, strtabOffs, strtabSize := img.SectionAddrInfo(istrtab)
	if symtabOffs == 0 || symtabSize <= 0xF || strtabOffs == 0 || strtabSize == 0 {
		return 0
	}

	count := 0
	nsym := symtabSize / symEntrySize
	symOffs := symtabOffs

	for i := uint32(0); i < nsym; i++ {
		nameOffs := img.readU32(symOffs + symOffName)
		addr := img.readU32(symOffs + symOffValue)
		size := img.readU32(symOffs + symOffSize)
		info := img.readU8(symOffs + symOffInfo)

		sym := Symbol{
			Index: int(i),
			Name:  img.readCString(strtabOffs + nameOffs),
			Addr:  addr,
			Size:  size,
			Info:  info,
		}

		matches := !globalFuncsOnly || sym.IsGlobalFunc()
		cont := true
		if matches {
			if visit != nil {
				cont = visit(sym)
			}
			count++
		}
		if !cont {
			break
		}

		symOffs += symEntrySize
	}

	return count
}

// ForeachSym visits every .symtab entry in order, stopping early if visit
// returns false. It returns the number of entries visited. Ported from
// sym_foreach_sub with mode 0.
func (img *Image) ForeachSym(visit VisitFn) int {
	return img.foreachSymMode(false, visit)
}

// ForeachGlobalFunc visits only global function symbols (STB_GLOBAL,
// STT_FUNC), stopping early if visit returns false. It returns the number
// of global function entries visited. Ported from sym_foreach_sub with
// mode 1.
func (img *Image) ForeachGlobalFunc(visit VisitFn) int {
	return img.foreachSymMode(true, visit)
}

// NumGlobalFuncs returns the number of global function symbols in .symtab,
// without visiting any of them. Ported from elfi32_num_global_funcs.
func (img *Image) NumGlobalFuncs() int {
	return img.foreachSymMode(true, nil)
}
