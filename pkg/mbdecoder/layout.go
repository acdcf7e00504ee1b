package mbdecoder

import "github.com/schaban/mbdisasm/internal/asciiframe"

// BitLayout renders an ASCII diagram of the instruction word's raw field
// boundaries (op/rD/rA/rB-or-imm). op/rD/rA are drawn whether or not this
// opcode uses them; the low field is drawn as rB or imm according to the
// decoded third operand. Adapted from the teacher's
// RawInstruction.PrettyPrint, which draws the same kind of diagram over
// utils.AsciiFrame.
func (r Record) BitLayout() string {
	// Bits 0-15 are either a register rB field (bits 11-15, the rest
	// unused) or a 16-bit immediate (bits 0-15), depending on whether
	// this opcode decoded a register or an immediate third operand --
	// the two interpretations overlap in the raw word, so only one is
	// shown per record.
	var low asciiframe.Field
	if r.HasThirdOperand && r.RB >= 0 {
		low = asciiframe.Field{Name: "rB", Begin: 11, Width: 5}
	} else {
		low = asciiframe.Field{Name: "imm", Begin: 0, Width: 16}
	}

	fields := []asciiframe.Field{
		low,
		{Name: "rA", Begin: 16, Width: 5},
		{Name: "rD", Begin: 21, Width: 5},
		{Name: "op", Begin: 26, Width: 6},
	}
	return asciiframe.Draw(fields, 32, "bits", asciiframe.RightToLeft, 0)
}
