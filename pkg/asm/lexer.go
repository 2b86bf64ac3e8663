package asm

import (
	"unicode"
	"unicode/utf8"
)

// ---------------------------------------------------------------------------
// Lexer: tokenizer for Cozputer assembly
// ---------------------------------------------------------------------------

// Lexer tokenizes assembly source. The grammar is one instruction per line:
// a mnemonic followed by its operands, with "#" or ";" comments running to
// end of line.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      rune // current character
	line    int  // current line (1-based)
	col     int  // current column (1-based)
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// readChar reads the next character. line/col always describe the
// character currently in ch.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}

	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
		l.pos = l.readPos
	} else {
		r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
		l.ch = r
		l.pos = l.readPos
		l.readPos += size
	}
	l.col++
}

// position returns the current position.
func (l *Lexer) position() Position {
	return Position{Line: l.line, Column: l.col}
}

// NextToken returns the next token. Newlines are significant because they
// separate instructions.
func (l *Lexer) NextToken() Token {
	l.skipSpaceAndComments()

	pos := l.position()

	switch {
	case l.ch == 0:
		return Token{Type: TokenEOF, Pos: pos}

	case l.ch == '\n':
		l.readChar()
		return Token{Type: TokenNewline, Literal: "\n", Pos: pos}

	case unicode.IsLetter(l.ch):
		return Token{Type: TokenIdent, Literal: l.readIdent(), Pos: pos}

	case unicode.IsDigit(l.ch):
		return Token{Type: TokenNumber, Literal: l.readNumber(), Pos: pos}

	default:
		lit := string(l.ch)
		l.readChar()
		return Token{Type: TokenIllegal, Literal: lit, Pos: pos}
	}
}

// skipSpaceAndComments skips horizontal whitespace, commas between operands,
// and comments. Newlines are left for NextToken.
func (l *Lexer) skipSpaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == ',':
			l.readChar()
		case l.ch == '#' || l.ch == ';':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// readIdent reads a mnemonic.
func (l *Lexer) readIdent() string {
	start := l.pos
	for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a decimal or 0x-prefixed hex literal.
func (l *Lexer) readNumber() string {
	start := l.pos
	for unicode.IsDigit(l.ch) || unicode.IsLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}
