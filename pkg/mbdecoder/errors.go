package mbdecoder

import (
	"errors"
	"fmt"
)

// ErrUnknownInstruction is returned by CheckKnown for a Record whose
// Mnemonic is empty -- any encoding Decode does not recognize, such as an
// unassigned opcode or the branch condition codes (6, 7) the ISA leaves
// undefined. Decode itself never fails: it always produces a Record,
// matching the original disassembler's behavior of printing a blank
// mnemonic rather than aborting the walk.
var ErrUnknownInstruction = errors.New("unknown instruction")

// CheckKnown reports whether r decoded to a recognized mnemonic, returning
// an error wrapping ErrUnknownInstruction if not.
func CheckKnown(r Record) error {
	if r.Mnemonic == "" {
		return fmt.Errorf("%w: opcode 0x%02X at 0x%08X", ErrUnknownInstruction, r.Op, r.Addr)
	}
	return nil
}
