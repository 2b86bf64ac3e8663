// Package bytecode implements the Cozputer virtual machine: a tiny
// byte-oriented CPU with four instructions (LOAD, ADD, SAY, HALT)
// operating over a 256-cell memory.
//
// The instruction encoding is the one the cube interface produces:
// an opcode byte followed by zero to two operand bytes.
//
//	0x10  LOAD addr, value   memory[addr] = value
//	0x11  ADD  addr, src     memory[addr] += memory[src]
//	0x12  SAY  addr          speak memory[addr]
//	0x13  HALT               stop
//
// Programs are decoded up front, so a truncated or unknown instruction is
// reported before anything executes. Execution is strictly linear: there
// are no jumps, and the machine is either running or halted.
//
// The SAY side effect goes through the Speaker interface so the machine
// can drive a robot voice, a terminal, or a test capture equally well.
package bytecode
