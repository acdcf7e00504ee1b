package mbdecoder

import "github.com/schaban/mbdisasm/internal/bitview"

// Field bit positions within a 32-bit instruction word.
const (
	opBit  = 26
	opWidth = 6

	rDBit = 21
	rABit = 16
	rBBit = 11
	regWidth = 5
)

// Decode interprets a 32-bit MicroBlaze instruction word at addr. The
// branch structure and bit tricks below mirror the opcode table exactly,
// including its quirks: opcode 0x05 is shadowed by the rsub family (bits
// 1 and 2 match first) and never reaches the cmp/cmpu case below it, and
// branch condition codes other than the twelve the ISA defines decode to
// an empty mnemonic with the operands otherwise intact.
func Decode(addr uint32, code uint32) Record {
	word := code
	view := bitview.Create(&word)

	op := view.Read(opBit, opWidth)
	rD := int32(view.Read(rDBit, regWidth))
	rA := int32(view.Read(rABit, regWidth))
	rB := int32(view.Read(rBBit, regWidth))
	imm := bitview.SignExtend16(code)

	r := Record{
		Addr: addr, Code: code, Op: op,
		RD: rD, RA: rA, RB: rB, Imm: imm,
		HasThirdOperand: true,
	}

	switch {
	case op&^6 == 0:
		switch op & 6 {
		case 6:
			r.Mnemonic = "addkc"
		case 2:
			r.Mnemonic = "addc"
		case 4:
			r.Mnemonic = "addk"
		default:
			r.Mnemonic = "add"
		}
	case op&^6 == 8:
		switch op & 6 {
		case 6:
			r.Mnemonic = "addikc"
		case 2:
			r.Mnemonic = "addic"
		case 4:
			r.Mnemonic = "addik"
		default:
			r.Mnemonic = "addi"
		}
		r.RB = noOperand
	case op&^6 == 1:
		switch op & 6 {
		case 6:
			r.Mnemonic = "rsubkc"
		case 2:
			r.Mnemonic = "rsubc"
		case 4:
			r.Mnemonic = "rsubk"
		default:
			r.Mnemonic = "rsub"
		}
	case op&^6 == 9:
		switch op & 6 {
		case 6:
			r.Mnemonic = "rsubikc"
		case 2:
			r.Mnemonic = "rsubic"
		case 4:
			r.Mnemonic = "rsubik"
		default:
			r.Mnemonic = "rsubi"
		}
		r.RB = noOperand
	case op == 0x21:
		r.Mnemonic = "and"
	case op == 0x29:
		r.Mnemonic = "andi"
		r.RB = noOperand
	case op == 0x23:
		if (imm>>10)&1 != 0 {
			r.Mnemonic = "pcmpne"
		} else {
			r.Mnemonic = "andn"
		}
	case op == 0x2B:
		r.Mnemonic = "andni"
		r.RB = noOperand
	case op == 0x27:
		r.Mnemonic = branchCondMnemonic(r.RD)
		r.RD = noOperand
	case op == 0x2F:
		r.Mnemonic = branchImmCondMnemonic(r.RD)
		r.RB = noOperand
		r.RD = noOperand
	case op == 0x26:
		decodeBr(&r)
	case op == 0x2E:
		decodeBri(&r)
	case op == 0x11:
		switch (imm >> 9) & 3 {
		case 0:
			r.Mnemonic = "bsrl"
		case 1:
			r.Mnemonic = "bsra"
		case 2:
			r.Mnemonic = "bsll"
		}
	case op == 0x19:
		switch (imm >> 9) & 3 {
		case 0:
			r.Mnemonic = "bsrli"
		case 1:
			r.Mnemonic = "bsrai"
		case 2:
			r.Mnemonic = "bslli"
		}
		r.Imm &= 0x1F
		r.RB = noOperand
	case op == 0x24:
		if r.RB == 0 {
			switch imm {
			case 0xE0:
				r.Mnemonic = "clz"
			case 0x61:
				r.Mnemonic = "sext16"
			case 0x60:
				r.Mnemonic = "sext8"
			case 1:
				r.Mnemonic = "sra"
			case 0x21:
				r.Mnemonic = "src"
			case 0x41:
				r.Mnemonic = "srl"
			case 0x1E0:
				r.Mnemonic = "swapb"
			case 0x1E2:
				r.Mnemonic = "swaph"
			}
			r.HasThirdOperand = false
		} else {
			r.Mnemonic = "-- wdc/wic --"
		}
	case op == 0x05:
		// Unreachable: op&^6==1 above already claims op==5 (rsubk).
		// Kept to document the original's dead cmp/cmpu case.
		r.Imm &= 0x3FF
		switch r.Imm {
		case 1:
			r.Mnemonic = "cmp"
		case 3:
			r.Mnemonic = "cmpu"
		}
	case op == 0x16:
		decodeFPU(&r, imm)
	case op == 0x1B:
		if (imm>>15)&1 != 0 {
			r.Mnemonic = "-- put --"
		} else {
			r.Mnemonic = "-- get --"
		}
	case op == 0x13:
		if (imm>>10)&1 != 0 {
			r.Mnemonic = "-- putd --"
		} else {
			r.Mnemonic = "-- getd --"
		}
	case op == 0x12:
		r.Mnemonic = "idiv"
	case op == 0x2C:
		r.Mnemonic = "imm"
		r.Imm &= 0xFFFF
		r.RD = noOperand
		r.RA = noOperand
		r.RB = noOperand
	case op == 0x30:
		r.Mnemonic = decodeLoadByte(imm)
	case op == 0x38:
		r.Mnemonic = "lbui"
		r.RB = noOperand
	case op == 0x31:
		r.Mnemonic = decodeLoadHalf(imm)
	case op == 0x39:
		r.Mnemonic = "lhui"
		r.RB = noOperand
	case op == 0x32:
		r.Mnemonic = decodeLoadWord(imm)
	case op == 0x3A:
		r.Mnemonic = "lwi"
		r.RB = noOperand
	case op == 0x25:
		r.Mnemonic = "-- mfs/msrclr/msrset/mts -- "
	case op == 0x10:
		r.Imm &= 0x7FF
		switch r.Imm {
		case 0:
			r.Mnemonic = "mul"
		case 1:
			r.Mnemonic = "mulh"
		case 2:
			r.Mnemonic = "mulhsu"
		case 3:
			r.Mnemonic = "mulhu"
		}
	case op == 0x18:
		r.Mnemonic = "muli"
		r.RB = noOperand
	case op == 0x20:
		if (imm>>10)&1 != 0 {
			r.Mnemonic = "pcmpbf"
		} else {
			r.Mnemonic = "or"
		}
	case op == 0x28:
		r.Mnemonic = "ori"
		r.RB = noOperand
	case op == 0x22:
		if (imm>>10)&1 != 0 {
			r.Mnemonic = "pcmpeq"
		} else {
			r.Mnemonic = "xor"
		}
	case op == 0x2D:
		switch r.RD {
		case 0x12:
			r.Mnemonic = "rtbd"
		case 0x11:
			r.Mnemonic = "rtid"
		case 0x14:
			r.Mnemonic = "rted"
		case 0x10:
			r.Mnemonic = "rtsd"
		}
		r.RD = noOperand
		r.RB = noOperand
	case op == 0x34:
		r.Mnemonic = decodeStoreByte(imm)
	case op == 0x3C:
		r.Mnemonic = "sbi"
		r.RB = noOperand
	case op == 0x35:
		r.Mnemonic = decodeStoreHalf(imm)
	case op == 0x3D:
		r.Mnemonic = "shi"
		r.RB = noOperand
	case op == 0x36:
		r.Mnemonic = decodeStoreWord(imm)
	case op == 0x3E:
		r.Mnemonic = "swi"
		r.RB = noOperand
	case op == 0x2A:
		r.Mnemonic = "xori"
		r.RB = noOperand
	}

	return r
}

// branchCondMnemonic maps a register-operand conditional branch's rD
// field to its mnemonic (beq/bge/bgt/ble/blt/bne, plus their delay-slot
// "d" forms). Unrecognized codes -- including condition codes 6 and 7,
// which the ISA leaves undefined -- yield an empty mnemonic.
func branchCondMnemonic(cond int32) string {
	switch cond {
	case 0:
		return "beq"
	case 0x10:
		return "beqd"
	case 5:
		return "bge"
	case 0x15:
		return "bged"
	case 4:
		return "bgt"
	case 0x14:
		return "bgtd"
	case 3:
		return "ble"
	case 0x13:
		return "bled"
	case 2:
		return "blt"
	case 0x12:
		return "bltd"
	case 1:
		return "bne"
	case 0x11:
		return "bned"
	default:
		return ""
	}
}

// branchImmCondMnemonic is branchCondMnemonic's immediate-operand sibling
// (beqi/bgei/bgti/blei/blti/bnei and their delay-slot forms).
func branchImmCondMnemonic(cond int32) string {
	switch cond {
	case 0:
		return "beqi"
	case 0x10:
		return "beqid"
	case 5:
		return "bgei"
	case 0x15:
		return "bgedi"
	case 4:
		return "bgti"
	case 0x14:
		return "bgtid"
	case 3:
		return "blei"
	case 0x13:
		return "bleid"
	case 2:
		return "blti"
	case 0x12:
		return "bltid"
	case 1:
		return "bnei"
	case 0x11:
		return "bneid"
	default:
		return ""
	}
}

// decodeBr decodes opcode 0x26 (register-target branches: br/bra/brd/
// brad/brld/brald, plus brk and the unconditional forms), clearing
// operand fields exactly as the original disassembler does.
func decodeBr(r *Record) {
	switch {
	case r.RA == 0xC:
		r.Mnemonic = "brk"
	case r.RA&0x10 != 0:
		switch (r.RA >> 2) & 3 {
		case 0:
			r.Mnemonic = "brd"
		case 1:
			r.Mnemonic = "brld"
		case 2:
			r.Mnemonic = "brad"
		default:
			r.Mnemonic = "brald"
		}
	default:
		if r.RA&8 != 0 {
			r.Mnemonic = "bra"
		} else {
			r.Mnemonic = "br"
		}
		r.RD = noOperand
	}
	r.RA = noOperand
}

// decodeBri decodes opcode 0x2E (immediate-target branches: bri/brai/
// brid/braid/brlid/bralid, plus brki and mbar).
func decodeBri(r *Record) {
	switch {
	case r.RA == 0xC:
		r.Mnemonic = "brki"
	case r.RA == 2:
		r.Mnemonic = "mbar"
		r.Imm = r.RD
		r.RD = noOperand
		r.RA = noOperand
		r.RB = noOperand
	case r.RA&0x10 != 0:
		switch (r.RA >> 2) & 3 {
		case 0:
			r.Mnemonic = "brid"
			r.RD = noOperand
		case 1:
			r.Mnemonic = "brlid"
		case 2:
			r.Mnemonic = "braid"
			r.RD = noOperand
		default:
			r.Mnemonic = "bralid"
		}
	default:
		if r.RA&8 != 0 {
			r.Mnemonic = "brai"
		} else {
			r.Mnemonic = "bri"
		}
		r.RD = noOperand
	}
	r.RA = noOperand
	r.RB = noOperand
}

// decodeFPU decodes opcode 0x16's floating point sub-opcode field.
func decodeFPU(r *Record, imm int32) {
	switch (imm >> 7) & 0xF {
	case 0:
		r.Mnemonic = "fadd"
	case 1:
		r.Mnemonic = "frsub"
	case 2:
		r.Mnemonic = "fmul"
	case 3:
		r.Mnemonic = "fdiv"
	case 4:
		switch (imm >> 4) & 0xF {
		case 0:
			r.Mnemonic = "fcmp.un"
		case 1:
			r.Mnemonic = "fcmp.lt"
		case 2:
			r.Mnemonic = "fcmp.eq"
		case 3:
			r.Mnemonic = "fcmp.le"
		case 4:
			r.Mnemonic = "fcmp.gt"
		case 5:
			r.Mnemonic = "fcmp.ne"
		case 6:
			r.Mnemonic = "fcmp.ge"
		}
	case 5:
		r.Mnemonic = "flt"
		r.HasThirdOperand = false
	case 6:
		r.Mnemonic = "fint"
		r.HasThirdOperand = false
	case 7:
		r.Mnemonic = "fsqrt"
		r.HasThirdOperand = false
	}
}

func decodeLoadByte(imm int32) string {
	switch {
	case imm&(1<<7) != 0:
		return "lbuea"
	case imm&(1<<9) != 0:
		return "lbur"
	default:
		return "lbu"
	}
}

func decodeLoadHalf(imm int32) string {
	switch {
	case imm&(1<<7) != 0:
		return "lhuea"
	case imm&(1<<9) != 0:
		return "lhur"
	default:
		return "lhu"
	}
}

func decodeLoadWord(imm int32) string {
	switch {
	case imm&(1<<10) != 0:
		return "lwx"
	case imm&(1<<7) != 0:
		return "lwea"
	case imm&(1<<9) != 0:
		return "lwr"
	default:
		return "lw"
	}
}

func decodeStoreByte(imm int32) string {
	switch {
	case imm&(1<<7) != 0:
		return "sbea"
	case imm&(1<<9) != 0:
		return "sbr"
	default:
		return "sb"
	}
}

func decodeStoreHalf(imm int32) string {
	switch {
	case imm&(1<<7) != 0:
		return "shea"
	case imm&(1<<9) != 0:
		return "shr"
	default:
		return "sh"
	}
}

func decodeStoreWord(imm int32) string {
	switch {
	case imm&(1<<7) != 0:
		return "swea"
	case imm&(1<<10) != 0:
		return "swx"
	case imm&(1<<9) != 0:
		return "swr"
	default:
		return "sw"
	}
}
