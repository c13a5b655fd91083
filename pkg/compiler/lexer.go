package compiler

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"int":    INT,
	"return": RETURN,
}

// punctuation maps single-character tokens to their TokenType.
var punctuation = map[byte]TokenType{
	'{': LBRACE,
	'}': RBRACE,
	'(': LPAREN,
	')': RPAREN,
	';': SEMICOLON,
}

// ErrUnexpectedCharacter is matched by every *LexError.
var ErrUnexpectedCharacter = errors.New("unexpected character")

// LexError reports the first character Lex could not classify.
type LexError struct {
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %c", e.Char)
}

func (e *LexError) Is(target error) bool {
	return target == ErrUnexpectedCharacter
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src string
	pos int // index of the next byte to consume
}

// NewLexer returns a Lexer positioned at the start of src, which should
// already have been through Preprocess.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// peek returns the byte at the current position without advancing, or 0 at
// end of input.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && isSpace(l.peek()) {
		l.pos++
	}
}

// scanWord collects a maximal run of letters and underscores and resolves it
// against the keyword table.
func (l *Lexer) scanWord() Token {
	start := l.pos
	for l.pos < len(l.src) && isWordChar(l.peek()) {
		l.pos++
	}
	lexeme := l.src[start:l.pos]
	if kw, ok := keywords[lexeme]; ok {
		return Token{Type: kw, Lexeme: lexeme}
	}
	return Token{Type: IDENTIFIER, Lexeme: lexeme}
}

// scanInt collects a maximal run of decimal digits. The value wraps on
// overflow.
func (l *Lexer) scanInt() Token {
	start := l.pos
	var value int64
	for l.pos < len(l.src) && isDigit(l.peek()) {
		value = value*10 + int64(l.peek()-'0')
		l.pos++
	}
	return Token{Type: INTEGER, Lexeme: l.src[start:l.pos], Value: value}
}

// Next returns the next token. ok is false once the input is exhausted.
func (l *Lexer) Next() (tok Token, ok bool, err error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{}, false, nil
	}

	ch := l.peek()
	switch {
	case isWordChar(ch):
		return l.scanWord(), true, nil
	case isDigit(ch):
		return l.scanInt(), true, nil
	}

	if tt, found := punctuation[ch]; found {
		l.pos++
		return Token{Type: tt, Lexeme: l.src[l.pos-1 : l.pos]}, true, nil
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	if r == utf8.RuneError {
		r = rune(ch)
	}
	return Token{}, false, &LexError{Char: r}
}

// Lex tokenises src and returns all tokens in source order.
// It stops at the first character it cannot classify and returns a nil slice
// with a *LexError.
func Lex(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
