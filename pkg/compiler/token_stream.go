package compiler

// TokenStream is a read cursor over a lexed translation unit, handed to the
// grammar-level parser.
type TokenStream struct {
	tokens []Token
	cursor int
}

// NewTokenStream wraps tokens. The stream does not copy the slice.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Next returns the next token and advances. ok is false at the end of the stream.
func (s *TokenStream) Next() (tok Token, ok bool) {
	if s.cursor >= len(s.tokens) {
		return Token{}, false
	}
	tok = s.tokens[s.cursor]
	s.cursor++
	return tok, true
}

// Peek returns the next token without advancing.
func (s *TokenStream) Peek() (Token, bool) {
	if s.cursor >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.cursor], true
}

// Backup un-reads the last token returned by Next.
func (s *TokenStream) Backup() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Expect consumes the next token if it has type tt.
func (s *TokenStream) Expect(tt TokenType) (Token, bool) {
	tok, ok := s.Peek()
	if !ok || tok.Type != tt {
		return Token{}, false
	}
	s.cursor++
	return tok, true
}

// Len returns the number of tokens not yet consumed.
func (s *TokenStream) Len() int {
	return len(s.tokens) - s.cursor
}
