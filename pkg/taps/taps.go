// Package taps assembles program bytes from cube bit groups.
//
// The cube interface enters a byte as three groups of three bits,
// least-significant group first. For example 42 (binary 000101010)
// is entered as the groups 010, 101, 000.
//
// Reading the physical cubes (poses, taps, lights) is the robot's job;
// this package only does the bit arithmetic and program accumulation.
package taps

import (
	"fmt"
	"strconv"

	"github.com/cozbot/cozputer/pkg/bytecode"
)

const (
	// BitsPerGroup is the number of bits entered per cube row.
	BitsPerGroup = 3

	// GroupsPerByte is the number of groups that make up one byte.
	GroupsPerByte = 3
)

// Group is one three-bit cube row, in the range 0-7.
type Group byte

// Valid reports whether the group fits in three bits.
func (g Group) Valid() bool {
	return g < 1<<BitsPerGroup
}

// AssembleByte combines three groups into a byte, least-significant
// group first. Three groups can encode up to 511, so values over 0xFF
// are rejected rather than truncated.
func AssembleByte(groups []Group) (byte, error) {
	if len(groups) != GroupsPerByte {
		return 0, fmt.Errorf("taps: need %d groups per byte, got %d", GroupsPerByte, len(groups))
	}

	value := 0
	for i, g := range groups {
		if !g.Valid() {
			return 0, fmt.Errorf("taps: group %d out of range: %d", i, g)
		}
		value |= int(g) << (BitsPerGroup * i)
	}

	if value > 0xFF {
		return 0, fmt.Errorf("taps: %d does not fit in a byte", value)
	}
	return byte(value), nil
}

// ParseGroup parses a group written as three binary digits, e.g. "010".
func ParseGroup(s string) (Group, error) {
	if len(s) != BitsPerGroup {
		return 0, fmt.Errorf("taps: group %q must be %d binary digits", s, BitsPerGroup)
	}
	n, err := strconv.ParseUint(s, 2, BitsPerGroup)
	if err != nil {
		return 0, fmt.Errorf("taps: bad group %q", s)
	}
	return Group(n), nil
}

// ParseGroups parses whitespace-separated binary groups, e.g. "010 101 000".
func ParseGroups(fields []string) ([]Group, error) {
	groups := make([]Group, 0, len(fields))
	for _, f := range fields {
		g, err := ParseGroup(f)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// Builder accumulates bit groups into bytes into a program, the way the
// robot feeds the machine one assembled byte at a time.
type Builder struct {
	prog    *bytecode.Program
	pending []Group
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{prog: bytecode.NewProgram()}
}

// AddGroup feeds one group. Every third group completes a byte, which is
// appended to the program.
func (b *Builder) AddGroup(g Group) error {
	if !g.Valid() {
		return fmt.Errorf("taps: group out of range: %d", g)
	}
	b.pending = append(b.pending, g)
	if len(b.pending) == GroupsPerByte {
		value, err := AssembleByte(b.pending)
		if err != nil {
			return err
		}
		b.prog.AppendByte(value)
		b.pending = b.pending[:0]
	}
	return nil
}

// AddGroups feeds a sequence of groups.
func (b *Builder) AddGroups(groups []Group) error {
	for _, g := range groups {
		if err := b.AddGroup(g); err != nil {
			return err
		}
	}
	return nil
}

// Pending returns the number of groups entered toward the current byte.
func (b *Builder) Pending() int {
	return len(b.pending)
}

// Program returns the accumulated program. It fails if a byte was left
// half-entered.
func (b *Builder) Program() (*bytecode.Program, error) {
	if len(b.pending) != 0 {
		return nil, fmt.Errorf("taps: incomplete byte: %d of %d groups entered",
			len(b.pending), GroupsPerByte)
	}
	return b.prog, nil
}
