package bytecode

import (
	"strings"
	"testing"
)

func TestDisassembleListing(t *testing.T) {
	p := ProgramFromBytes([]byte{
		0x10, 0x0, 0x17,
		0x11, 0x0, 0x1,
		0x12, 0x0,
		0x13,
	})

	listing := p.DisassembleWithName("fortytwo")
	for _, want := range []string{
		"; === fortytwo ===",
		"0000  LOAD 0x00, 23",
		"0003  ADD 0x00, 0x01",
		"0006  SAY 0x00",
		"0008  HALT",
	} {
		if !strings.Contains(listing, want) {
			t.Errorf("Listing missing %q:\n%s", want, listing)
		}
	}
}

func TestDisassembleTruncated(t *testing.T) {
	p := ProgramFromBytes([]byte{0x12, 0x0, 0x10, 0x1})
	listing := p.Disassemble()
	if !strings.Contains(listing, "SAY 0x00") {
		t.Errorf("Listing missing complete instruction:\n%s", listing)
	}
	if !strings.Contains(listing, "truncated") {
		t.Errorf("Listing must mark the truncated tail:\n%s", listing)
	}
}

func TestDisassembleUnknown(t *testing.T) {
	p := ProgramFromBytes([]byte{0xEE})
	listing := p.Disassemble()
	if !strings.Contains(listing, "unknown opcode") {
		t.Errorf("Listing must mark unknown opcodes:\n%s", listing)
	}
}

func TestDisassembleInstruction(t *testing.T) {
	p := ProgramFromBytes([]byte{0x10, 0x2, 0x7, 0x13})
	if got := p.DisassembleInstruction(0); got != "LOAD 0x02, 7" {
		t.Errorf("Expected LOAD 0x02, 7, got %q", got)
	}
	if got := p.DisassembleInstruction(3); got != "HALT" {
		t.Errorf("Expected HALT, got %q", got)
	}
}
