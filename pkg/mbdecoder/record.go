// Package mbdecoder decodes 32-bit MicroBlaze instruction words into
// mnemonic/operand records. Decode is a pure function of (address, word):
// it touches no global state and performs no I/O.
package mbdecoder

// noOperand marks a register field that this instruction does not use.
const noOperand = -1

// Record is the decoded form of one instruction word.
type Record struct {
	Addr uint32
	Code uint32
	Op   uint32

	// Mnemonic is empty for encodings the decoder does not recognize
	// (unassigned opcodes, sub-field values outside a family's table, and
	// undefined branch condition codes such as 6 and 7), and is a
	// "-- name --" placeholder
	// for opcode families this decoder does not further break down
	// (wdc/wic, mfs/msrclr/msrset/mts, put/get, putd/getd).
	Mnemonic string

	// RD, RA, RB hold register numbers, or noOperand when the field is
	// not a register operand of this instruction.
	RD, RA, RB int32

	// Imm holds the sign-extended 16-bit immediate, reinterpreted by some
	// opcodes as an unsigned sub-field (shift amounts, FPU sub-opcodes).
	Imm int32

	// HasThirdOperand controls whether the RB-or-Imm operand is rendered
	// at all; a handful of two-operand forms (sext16, sra, flt, ...)
	// clear it.
	HasThirdOperand bool
}
