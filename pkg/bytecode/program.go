package bytecode

import (
	"errors"
	"fmt"
)

// Decode errors. Callers branch on these with errors.Is.
var (
	// ErrTruncated means the byte stream ended in the middle of an instruction.
	ErrTruncated = errors.New("truncated instruction")

	// ErrUnknownOpcode means an opcode byte is not part of the instruction set.
	ErrUnknownOpcode = errors.New("unknown opcode")
)

// Instruction is a decoded instruction: an opcode and its operand bytes.
// Unused operand slots are zero.
type Instruction struct {
	Op       Opcode
	Operands [2]byte
}

// Addr returns the first operand, which is a memory address for
// LOAD, ADD and SAY.
func (ins Instruction) Addr() byte {
	return ins.Operands[0]
}

// Value returns the immediate value of a LOAD instruction.
func (ins Instruction) Value() byte {
	return ins.Operands[1]
}

// Src returns the source address of an ADD instruction.
func (ins Instruction) Src() byte {
	return ins.Operands[1]
}

// String returns the instruction in listing form, e.g. "LOAD 0x00, 23".
func (ins Instruction) String() string {
	switch ins.Op {
	case OpLoad:
		return fmt.Sprintf("LOAD 0x%02X, %d", ins.Addr(), ins.Value())
	case OpAdd:
		return fmt.Sprintf("ADD 0x%02X, 0x%02X", ins.Addr(), ins.Src())
	case OpSay:
		return fmt.Sprintf("SAY 0x%02X", ins.Addr())
	case OpHalt:
		return "HALT"
	default:
		return GetOpcodeInfo(ins.Op).Name
	}
}

// Program holds an ordered sequence of instruction bytes, produced by the
// cube interface, the assembler, or a program image.
type Program struct {
	Code []byte
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{Code: make([]byte, 0, 32)}
}

// ProgramFromBytes wraps raw instruction bytes in a Program.
// The bytes are not validated; call Validate or Decode for that.
func ProgramFromBytes(code []byte) *Program {
	return &Program{Code: code}
}

// Emit appends a single-byte instruction to the code.
func (p *Program) Emit(op Opcode) int {
	offset := len(p.Code)
	p.Code = append(p.Code, byte(op))
	return offset
}

// EmitWithOperands appends an opcode with operand bytes.
func (p *Program) EmitWithOperands(op Opcode, operands ...byte) int {
	offset := len(p.Code)
	p.Code = append(p.Code, byte(op))
	p.Code = append(p.Code, operands...)
	return offset
}

// AppendByte appends one raw byte, the way the cube interface feeds the
// machine one assembled byte at a time.
func (p *Program) AppendByte(b byte) {
	p.Code = append(p.Code, b)
}

// Len returns the length of the code in bytes.
func (p *Program) Len() int {
	return len(p.Code)
}

// decodeAt decodes the instruction starting at offset.
// Returns the instruction and its length in bytes.
func (p *Program) decodeAt(offset int) (Instruction, int, error) {
	op := Opcode(p.Code[offset])
	if !op.Valid() {
		return Instruction{}, 0, fmt.Errorf("offset %d: %w 0x%02X", offset, ErrUnknownOpcode, byte(op))
	}

	n := op.OperandLen()
	if offset+1+n > len(p.Code) {
		return Instruction{}, 0, fmt.Errorf("offset %d: %w: %s needs %d operand bytes, %d left",
			offset, ErrTruncated, op, n, len(p.Code)-offset-1)
	}

	ins := Instruction{Op: op}
	copy(ins.Operands[:], p.Code[offset+1:offset+1+n])
	return ins, 1 + n, nil
}

// Decode scans the whole program positionally and returns its instructions.
// It fails on the first unknown opcode or truncated instruction.
func (p *Program) Decode() ([]Instruction, error) {
	var instructions []Instruction
	offset := 0
	for offset < len(p.Code) {
		ins, n, err := p.decodeAt(offset)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, ins)
		offset += n
	}
	return instructions, nil
}

// Validate checks that every reachable instruction decodes cleanly.
// Control flow is strictly linear, so scanning stops after the first HALT:
// bytes beyond it can never execute and are not required to decode.
func (p *Program) Validate() error {
	offset := 0
	for offset < len(p.Code) {
		ins, n, err := p.decodeAt(offset)
		if err != nil {
			return err
		}
		if ins.Op == OpHalt {
			return nil
		}
		offset += n
	}
	return nil
}

// InstructionCount returns the number of instructions in the program,
// or an error if the program is malformed.
func (p *Program) InstructionCount() (int, error) {
	instructions, err := p.Decode()
	if err != nil {
		return 0, err
	}
	return len(instructions), nil
}
