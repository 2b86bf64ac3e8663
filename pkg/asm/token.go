package asm

import "fmt"

// TokenType identifies a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNewline
	TokenIdent  // Mnemonic, e.g. LOAD
	TokenNumber // Decimal or 0x-prefixed hex literal
	TokenIllegal
)

// Position is a location in the source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
}

// String returns "line:col".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical token.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
