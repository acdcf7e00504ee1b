package mbdecoder

import (
	"strings"

	"github.com/schaban/mbdisasm/pkg/utils"
)

// opcodeDoc describes one entry of the opcode table for documentation
// purposes: its mnemonic, raw opcode value, and operand shape.
type opcodeDoc struct {
	mnemonic string
	opcode   uint32
	operands string
}

// opcodeTable lists the mnemonics Decode recognizes, grouped the way the
// decoder's switch groups them. Placeholder mnemonics ("-- wdc/wic --"
// and friends) are included since they are a documented, deliberate
// decoding result, not an omission.
var opcodeTable = []opcodeDoc{
	{"add", 0x00, "rD, rA, rB"}, {"addc", 0x02, "rD, rA, rB"},
	{"addk", 0x04, "rD, rA, rB"}, {"addkc", 0x06, "rD, rA, rB"},
	{"addi", 0x08, "rD, rA, imm"}, {"addic", 0x0A, "rD, rA, imm"},
	{"addik", 0x0C, "rD, rA, imm"}, {"addikc", 0x0E, "rD, rA, imm"},
	{"rsub", 0x01, "rD, rA, rB"}, {"rsubc", 0x03, "rD, rA, rB"},
	{"rsubk", 0x05, "rD, rA, rB"}, {"rsubkc", 0x07, "rD, rA, rB"},
	{"rsubi", 0x09, "rD, rA, imm"}, {"rsubic", 0x0B, "rD, rA, imm"},
	{"rsubik", 0x0D, "rD, rA, imm"}, {"rsubikc", 0x0F, "rD, rA, imm"},
	{"and", 0x21, "rD, rA, rB"}, {"andi", 0x29, "rD, rA, imm"},
	{"andn", 0x23, "rD, rA, rB"}, {"pcmpne", 0x23, "rD, rA, rB"},
	{"andni", 0x2B, "rD, rA, imm"},
	{"beq/bge/bgt/ble/blt/bne (+d)", 0x27, "rA, rB"},
	{"beqi/bgei/bgti/blei/blti/bnei (+d)", 0x2F, "rA, imm"},
	{"br/bra/brd/brad/brld/brald/brk", 0x26, "[rD,] rB"},
	{"bri/brai/brid/braid/brlid/bralid/brki/mbar", 0x2E, "[rD,] imm"},
	{"bsrl", 0x11, "rD, rA, rB"}, {"bsra", 0x11, "rD, rA, rB"}, {"bsll", 0x11, "rD, rA, rB"},
	{"bsrli", 0x19, "rD, rA, imm"}, {"bsrai", 0x19, "rD, rA, imm"}, {"bslli", 0x19, "rD, rA, imm"},
	{"clz", 0x24, "rD, rA"}, {"sext16", 0x24, "rD, rA"}, {"sext8", 0x24, "rD, rA"},
	{"sra", 0x24, "rD, rA"}, {"src", 0x24, "rD, rA"}, {"srl", 0x24, "rD, rA"},
	{"swapb", 0x24, "rD, rA"}, {"swaph", 0x24, "rD, rA"},
	{"-- wdc/wic --", 0x24, "rD, rA, rB"},
	{"fadd/frsub/fmul/fdiv", 0x16, "rD, rA, rB"},
	{"fcmp.{un,lt,eq,le,gt,ne,ge}", 0x16, "rD, rA, rB"},
	{"flt/fint/fsqrt", 0x16, "rD, rA"},
	{"-- get/put --", 0x1B, "rD, rA, rB"},
	{"-- getd/putd --", 0x13, "rD, rA, rB"},
	{"idiv", 0x12, "rD, rA, rB"},
	{"imm", 0x2C, "imm"},
	{"lbu", 0x30, "rD, rA, rB"}, {"lbuea", 0x30, "rD, rA, rB"}, {"lbur", 0x30, "rD, rA, rB"},
	{"lbui", 0x38, "rD, rA, imm"},
	{"lhu", 0x31, "rD, rA, rB"}, {"lhuea", 0x31, "rD, rA, rB"}, {"lhur", 0x31, "rD, rA, rB"},
	{"lhui", 0x39, "rD, rA, imm"},
	{"lw", 0x32, "rD, rA, rB"}, {"lwea", 0x32, "rD, rA, rB"}, {"lwr", 0x32, "rD, rA, rB"}, {"lwx", 0x32, "rD, rA, rB"},
	{"lwi", 0x3A, "rD, rA, imm"},
	{"-- mfs/msrclr/msrset/mts --", 0x25, "rD, rA, rB"},
	{"mul", 0x10, "rD, rA, rB"}, {"mulh", 0x10, "rD, rA, rB"},
	{"mulhsu", 0x10, "rD, rA, rB"}, {"mulhu", 0x10, "rD, rA, rB"},
	{"muli", 0x18, "rD, rA, imm"},
	{"or", 0x20, "rD, rA, rB"}, {"pcmpbf", 0x20, "rD, rA, rB"},
	{"ori", 0x28, "rD, rA, imm"},
	{"xor", 0x22, "rD, rA, rB"}, {"pcmpeq", 0x22, "rD, rA, rB"},
	{"xori", 0x2A, "rD, rA, imm"},
	{"rtbd/rtid/rted/rtsd", 0x2D, "rA, imm"},
	{"sb", 0x34, "rD, rA, rB"}, {"sbea", 0x34, "rD, rA, rB"}, {"sbr", 0x34, "rD, rA, rB"},
	{"sbi", 0x3C, "rD, rA, imm"},
	{"sh", 0x35, "rD, rA, rB"}, {"shea", 0x35, "rD, rA, rB"}, {"shr", 0x35, "rD, rA, rB"},
	{"shi", 0x3D, "rD, rA, imm"},
	{"sw", 0x36, "rD, rA, rB"}, {"swea", 0x36, "rD, rA, rB"}, {"swr", 0x36, "rD, rA, rB"}, {"swx", 0x36, "rD, rA, rB"},
	{"swi", 0x3E, "rD, rA, imm"},
}

// DocString renders the opcode table as plain-text documentation,
// adapted from the teacher's mc.Descriptor.DocString for the "docs"
// command.
func DocString() string {
	var b strings.Builder
	b.WriteString("MicroBlaze opcode table\n")
	b.WriteString("mnemonic\topcode\toperands\n")
	for _, d := range opcodeTable {
		b.WriteString(d.mnemonic)
		b.WriteByte('\t')
		b.WriteString(utils.FormatUintHex(uint64(d.opcode), 2))
		b.WriteByte('\t')
		b.WriteString(d.operands)
		b.WriteByte('\n')
	}
	return b.String()
}
