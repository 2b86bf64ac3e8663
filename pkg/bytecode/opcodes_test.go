package bytecode

import (
	"strings"
	"testing"
)

func TestAllOpcodesHaveMetadata(t *testing.T) {
	for _, op := range AllOpcodes() {
		info := GetOpcodeInfo(op)
		if info.Name == "" || strings.HasPrefix(info.Name, "UNKNOWN") {
			t.Errorf("Opcode 0x%02X has no name", byte(op))
		}
		if info.OperandLen < 0 || info.OperandLen > 2 {
			t.Errorf("Opcode %s has impossible operand count %d", info.Name, info.OperandLen)
		}
	}
}

func TestOperandCounts(t *testing.T) {
	cases := []struct {
		op   Opcode
		want int
	}{
		{OpLoad, 2},
		{OpAdd, 2},
		{OpSay, 1},
		{OpHalt, 0},
	}
	for _, c := range cases {
		if got := c.op.OperandLen(); got != c.want {
			t.Errorf("%s: expected %d operands, got %d", c.op, c.want, got)
		}
		if got := c.op.InstructionLen(); got != c.want+1 {
			t.Errorf("%s: expected instruction length %d, got %d", c.op, c.want+1, got)
		}
	}
}

func TestOpcodeValues(t *testing.T) {
	// The cube encoding is a wire format; these values are frozen.
	if OpLoad != 0x10 || OpAdd != 0x11 || OpSay != 0x12 || OpHalt != 0x13 {
		t.Error("Opcode values must match the cube encoding")
	}
}

func TestUnknownOpcodeString(t *testing.T) {
	got := Opcode(0xEE).String()
	if got != "UNKNOWN(0xEE)" {
		t.Errorf("Expected UNKNOWN(0xEE), got %q", got)
	}
	if Opcode(0xEE).Valid() {
		t.Error("0xEE must not be a valid opcode")
	}
}

func TestOpcodeForMnemonic(t *testing.T) {
	op, ok := OpcodeForMnemonic("SAY")
	if !ok || op != OpSay {
		t.Errorf("Expected OpSay, got 0x%02X (ok=%v)", byte(op), ok)
	}
	if _, ok := OpcodeForMnemonic("JMP"); ok {
		t.Error("JMP must not resolve to an opcode")
	}
}
