package taps

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cozbot/cozputer/pkg/bytecode"
)

func TestAssembleByteFortyTwo(t *testing.T) {
	// 42 = 000101010: groups 010, 101, 000 least-significant first.
	value, err := AssembleByte([]Group{0b010, 0b101, 0b000})
	if err != nil {
		t.Fatalf("AssembleByte failed: %v", err)
	}
	if value != 42 {
		t.Errorf("Expected 42, got %d", value)
	}
}

func TestAssembleByteGroupOrder(t *testing.T) {
	// The first group is the least significant.
	a, err := AssembleByte([]Group{1, 0, 0})
	if err != nil {
		t.Fatalf("AssembleByte failed: %v", err)
	}
	b, err := AssembleByte([]Group{0, 0, 1})
	if err != nil {
		t.Fatalf("AssembleByte failed: %v", err)
	}
	if a != 1 || b != 64 {
		t.Errorf("Expected 1 and 64, got %d and %d", a, b)
	}
}

func TestAssembleByteOverflow(t *testing.T) {
	// 111 111 111 would be 511.
	if _, err := AssembleByte([]Group{7, 7, 7}); err == nil {
		t.Error("Expected error for value over 0xFF")
	}
	// 11111111 = 255 is the ceiling.
	value, err := AssembleByte([]Group{0b111, 0b111, 0b011})
	if err != nil {
		t.Fatalf("AssembleByte failed: %v", err)
	}
	if value != 255 {
		t.Errorf("Expected 255, got %d", value)
	}
}

func TestAssembleByteWrongCount(t *testing.T) {
	if _, err := AssembleByte([]Group{1, 2}); err == nil {
		t.Error("Expected error for two groups")
	}
}

func TestAssembleByteInvalidGroup(t *testing.T) {
	if _, err := AssembleByte([]Group{8, 0, 0}); err == nil {
		t.Error("Expected error for group over 7")
	}
}

func TestParseGroups(t *testing.T) {
	groups, err := ParseGroups(strings.Fields("010 101 000"))
	if err != nil {
		t.Fatalf("ParseGroups failed: %v", err)
	}
	value, err := AssembleByte(groups)
	if err != nil {
		t.Fatalf("AssembleByte failed: %v", err)
	}
	if value != 42 {
		t.Errorf("Expected 42, got %d", value)
	}
}

func TestParseGroupRejectsBadInput(t *testing.T) {
	for _, s := range []string{"01", "0101", "012", "abc", ""} {
		if _, err := ParseGroup(s); err == nil {
			t.Errorf("Expected error for %q", s)
		}
	}
}

func TestBuilderAccumulatesProgram(t *testing.T) {
	// Enter LOAD 0x0 42; SAY 0x0; HALT one group at a time.
	b := NewBuilder()
	for _, value := range []byte{0x10, 0x00, 42, 0x12, 0x00, 0x13} {
		groups := []Group{
			Group(value & 0b111),
			Group((value >> 3) & 0b111),
			Group((value >> 6) & 0b111),
		}
		if err := b.AddGroups(groups); err != nil {
			t.Fatalf("AddGroups failed: %v", err)
		}
	}

	prog, err := b.Program()
	if err != nil {
		t.Fatalf("Program failed: %v", err)
	}
	want := []byte{0x10, 0x00, 42, 0x12, 0x00, 0x13}
	if !bytes.Equal(prog.Code, want) {
		t.Fatalf("Expected %x, got %x", want, prog.Code)
	}

	var said []string
	vm := bytecode.NewVM()
	vm.SetSpeaker(bytecode.SpeakerFunc(func(text string) error {
		said = append(said, text)
		return nil
	}))
	if err := vm.Run(prog); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(said) != 1 || said[0] != "42" {
		t.Errorf("Expected [42], got %v", said)
	}
}

func TestBuilderIncompleteByte(t *testing.T) {
	b := NewBuilder()
	if err := b.AddGroup(1); err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if b.Pending() != 1 {
		t.Errorf("Expected 1 pending group, got %d", b.Pending())
	}
	if _, err := b.Program(); err == nil {
		t.Error("Expected error for half-entered byte")
	}
}

func TestBuilderOverflowByte(t *testing.T) {
	b := NewBuilder()
	if err := b.AddGroups([]Group{7, 7, 7}); err == nil {
		t.Error("Expected error when the third group overflows the byte")
	}
}
