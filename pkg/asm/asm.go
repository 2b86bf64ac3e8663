// Package asm assembles mnemonic source into Cozputer bytecode.
//
// The source form mirrors the comments people write next to cube programs:
//
//	LOAD 0x0 23   # Load 23 at 0x0
//	LOAD 0x1 19
//	ADD  0x0 0x1
//	SAY  0x0
//	HALT
//
// Mnemonics are case-insensitive; operands are decimal or 0x-prefixed hex
// and must fit in a byte. Commas between operands are optional.
package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cozbot/cozputer/pkg/bytecode"
)

// parser consumes tokens and emits bytecode.
type parser struct {
	lexer *Lexer
	tok   Token
	prog  *bytecode.Program
}

// Assemble compiles assembly source into a program.
func Assemble(source string) (*bytecode.Program, error) {
	p := &parser{
		lexer: NewLexer(source),
		prog:  bytecode.NewProgram(),
	}
	p.next()

	for p.tok.Type != TokenEOF {
		if p.tok.Type == TokenNewline {
			p.next()
			continue
		}
		if err := p.parseInstruction(); err != nil {
			return nil, err
		}
	}

	return p.prog, nil
}

func (p *parser) next() {
	p.tok = p.lexer.NextToken()
}

// parseInstruction parses one mnemonic with its operands, up to the end of
// the line.
func (p *parser) parseInstruction() error {
	if p.tok.Type != TokenIdent {
		return fmt.Errorf("%s: expected mnemonic, got %q", p.tok.Pos, p.tok.Literal)
	}

	mnemonic := strings.ToUpper(p.tok.Literal)
	op, ok := bytecode.OpcodeForMnemonic(mnemonic)
	if !ok {
		return fmt.Errorf("%s: unknown mnemonic %q", p.tok.Pos, p.tok.Literal)
	}
	insPos := p.tok.Pos
	p.next()

	operands := make([]byte, 0, 2)
	for p.tok.Type == TokenNumber {
		b, err := p.parseByte()
		if err != nil {
			return err
		}
		operands = append(operands, b)
		p.next()
	}

	if p.tok.Type != TokenNewline && p.tok.Type != TokenEOF {
		return fmt.Errorf("%s: unexpected %q after %s", p.tok.Pos, p.tok.Literal, mnemonic)
	}

	if want := op.OperandLen(); len(operands) != want {
		return fmt.Errorf("%s: %s takes %d operand(s), got %d", insPos, mnemonic, want, len(operands))
	}

	p.prog.EmitWithOperands(op, operands...)
	return nil
}

// parseByte parses the current number token as a byte.
// Literals are decimal, or hex with a 0x prefix; a leading zero does not
// mean octal here.
func (p *parser) parseByte() (byte, error) {
	lit := p.tok.Literal
	base := 10
	if strings.HasPrefix(strings.ToLower(lit), "0x") {
		lit = lit[2:]
		base = 16
	}
	n, err := strconv.ParseUint(lit, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: bad number %q", p.tok.Pos, p.tok.Literal)
	}
	if n > 0xFF {
		return 0, fmt.Errorf("%s: %s does not fit in a byte", p.tok.Pos, p.tok.Literal)
	}
	return byte(n), nil
}
