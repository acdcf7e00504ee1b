package mbdecoder

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the record the way the original disassembler's instr()
// prints it: "mnemonic\trD, rA, rB" or "mnemonic\trD, rA, imm", trimming
// whichever of rD/rA/third-operand this instruction doesn't use.
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.Mnemonic)
	sb.WriteByte('\t')

	wrote := false
	writeOperand := func(s string) {
		if wrote {
			sb.WriteString(", ")
		}
		sb.WriteString(s)
		wrote = true
	}

	if r.RD >= 0 {
		writeOperand("r" + strconv.Itoa(int(r.RD)))
	}
	if r.RA >= 0 {
		writeOperand("r" + strconv.Itoa(int(r.RA)))
	}
	if r.HasThirdOperand {
		if r.RB >= 0 {
			writeOperand("r" + strconv.Itoa(int(r.RB)))
		} else {
			writeOperand(strconv.Itoa(int(r.Imm)))
		}
	}

	return sb.String()
}

// Disassembly renders the full "addr: code   mnemonic\toperands" line,
// matching the original's printf("%08X: %08X   %s\t...") layout.
func (r Record) Disassembly() string {
	return fmt.Sprintf("%08X: %08X   %s", r.Addr, r.Code, r.String())
}
