package compiler

import (
	"fmt"
	"strconv"
)

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	ILLEGAL TokenType = iota // zero value; never produced by Lex

	// Literals
	IDENTIFIER // variable / function name
	INTEGER    // decimal integer literal

	// Keywords
	INT    // "int"
	RETURN // "return"

	// Paired delimiters
	LBRACE // {
	RBRACE // }
	LPAREN // (
	RPAREN // )

	// Punctuation
	SEMICOLON // ;
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	IDENTIFIER: "IDENTIFIER",
	INTEGER:    "INTEGER",
	INT:        "INT",
	RETURN:     "RETURN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	SEMICOLON:  "SEMICOLON",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsKeyword reports whether tt is one of the reserved words.
func (tt TokenType) IsKeyword() bool {
	return tt == INT || tt == RETURN
}

// Token is a single lexical unit produced by the Lexer.
// Tokens carry no source position.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Value  int64  // decimal value of an INTEGER token
}

// Ident returns an IDENTIFIER token spelled name.
func Ident(name string) Token {
	return Token{Type: IDENTIFIER, Lexeme: name}
}

// Int returns an INTEGER token with value v.
func Int(v int64) Token {
	return Token{Type: INTEGER, Lexeme: strconv.FormatInt(v, 10), Value: v}
}

// Punct returns the token for a keyword or punctuation type, spelled the way
// the source spells it.
func Punct(tt TokenType) Token {
	return Token{Type: tt, Lexeme: spellings[tt]}
}

var spellings = map[TokenType]string{
	INT:       "int",
	RETURN:    "return",
	LBRACE:    "{",
	RBRACE:    "}",
	LPAREN:    "(",
	RPAREN:    ")",
	SEMICOLON: ";",
}

func (t Token) String() string {
	switch t.Type {
	case IDENTIFIER:
		return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
	case INTEGER:
		return fmt.Sprintf("%s %d", t.Type, t.Value)
	}
	return t.Type.String()
}
