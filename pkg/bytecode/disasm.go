package bytecode

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable listing for the program.
// Malformed tails are shown rather than dropped, so a truncated program
// still produces a useful listing.
func (p *Program) Disassemble() string {
	return p.DisassembleWithName("")
}

// DisassembleWithName returns a listing with a name header.
func (p *Program) DisassembleWithName(name string) string {
	var sb strings.Builder

	if name != "" {
		sb.WriteString(fmt.Sprintf("; === %s ===\n", name))
	}
	sb.WriteString(fmt.Sprintf("; %d bytes\n", len(p.Code)))

	offset := 0
	for offset < len(p.Code) {
		line, n := p.disassembleInstruction(offset)
		sb.WriteString(fmt.Sprintf("%04X  %s\n", offset, line))
		if n == 0 {
			break
		}
		offset += n
	}

	return sb.String()
}

// DisassembleInstruction returns a human-readable representation of the
// single instruction at the given byte offset.
func (p *Program) DisassembleInstruction(offset int) string {
	line, _ := p.disassembleInstruction(offset)
	return line
}

// disassembleInstruction disassembles one instruction at the given offset.
// Returns the formatted string and the instruction length, which is zero
// when the rest of the program cannot be decoded.
func (p *Program) disassembleInstruction(offset int) (string, int) {
	if offset >= len(p.Code) {
		return "<end of code>", 0
	}

	ins, n, err := p.decodeAt(offset)
	if err != nil {
		op := Opcode(p.Code[offset])
		if !op.Valid() {
			return fmt.Sprintf("DB 0x%02X ; unknown opcode", byte(op)), 0
		}
		left := p.Code[offset+1:]
		operands := make([]string, 0, len(left))
		for _, b := range left {
			operands = append(operands, fmt.Sprintf("0x%02X", b))
		}
		return fmt.Sprintf("%s %s ; truncated", op, strings.Join(operands, " ")), 0
	}

	return ins.String(), n
}
