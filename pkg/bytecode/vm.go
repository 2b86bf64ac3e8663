package bytecode

import (
	"fmt"
	"strconv"

	"github.com/tliron/commonlog"
)

// MemSize is the number of memory cells, addressed by a single byte.
const MemSize = 256

// Speaker is the interface for the speech actuator driven by SAY.
// This allows the VM to talk through a robot, a terminal, or a test capture.
type Speaker interface {
	// Say speaks the given text.
	Say(text string) error
}

// SpeakerFunc adapts a plain function to the Speaker interface.
type SpeakerFunc func(text string) error

// Say implements Speaker.
func (f SpeakerFunc) Say(text string) error {
	return f(text)
}

// NopSpeaker discards all output. It is the default when no speaker is set.
type NopSpeaker struct{}

// Say implements Speaker.
func (NopSpeaker) Say(string) error {
	return nil
}

// VM executes Cozputer programs.
//
// Memory cells hold Go ints rather than bytes: the original machine ran on
// unbounded integers, so repeated ADDs must not silently wrap.
type VM struct {
	memory  []int
	ip      int // Instruction pointer into the program bytes
	speaker Speaker

	// Trace logs each instruction before it executes.
	Trace bool

	log commonlog.Logger
}

// NewVM creates a machine with zeroed memory and no speaker.
func NewVM() *VM {
	return &VM{
		memory:  make([]int, MemSize),
		speaker: NopSpeaker{},
		log:     commonlog.GetLogger("cozputer.vm"),
	}
}

// SetSpeaker sets the speech actuator used by SAY.
func (vm *VM) SetSpeaker(speaker Speaker) {
	if speaker == nil {
		speaker = NopSpeaker{}
	}
	vm.speaker = speaker
}

// Mem returns the value of the memory cell at addr.
func (vm *VM) Mem(addr byte) int {
	return vm.memory[addr]
}

// Reset zeroes memory and rewinds the instruction pointer.
func (vm *VM) Reset() {
	for i := range vm.memory {
		vm.memory[i] = 0
	}
	vm.ip = 0
}

// Run executes a program from the start until HALT or end of code.
//
// The program is validated before anything executes, so a malformed
// program produces no side effects. A program without a trailing HALT
// terminates cleanly at end of input.
func (vm *VM) Run(p *Program) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("malformed program: %w", err)
	}

	vm.ip = 0
	for vm.ip < len(p.Code) {
		offset := vm.ip
		op := Opcode(p.Code[vm.ip])
		vm.ip++

		if vm.Trace {
			ins := Instruction{Op: op}
			copy(ins.Operands[:], p.Code[vm.ip:vm.ip+op.OperandLen()])
			vm.log.Infof("[%04X] %s", offset, ins)
		}

		switch op {
		case OpLoad:
			addr := p.Code[vm.ip]
			value := p.Code[vm.ip+1]
			vm.ip += 2
			vm.memory[addr] = int(value)

		case OpAdd:
			addr := p.Code[vm.ip]
			src := p.Code[vm.ip+1]
			vm.ip += 2
			vm.memory[addr] += vm.memory[src]

		case OpSay:
			addr := p.Code[vm.ip]
			vm.ip++
			if err := vm.speaker.Say(strconv.Itoa(vm.memory[addr])); err != nil {
				return fmt.Errorf("say at offset %d: %w", offset, err)
			}

		case OpHalt:
			// Stop immediately, regardless of remaining bytes.
			return nil

		default:
			// Unreachable after Validate; kept for programs built by hand.
			return fmt.Errorf("offset %d: %w 0x%02X", offset, ErrUnknownOpcode, byte(op))
		}
	}

	return nil
}
