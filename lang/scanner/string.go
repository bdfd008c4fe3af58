package scanner

import "github.com/juniper-lang/juniper/lang/token"

// string scans a double-quoted STRING literal. Strings may span multiple
// lines; there is no escape syntax, the text between the quotes is taken
// literally.
func (s *Scanner) string() token.Token {
	startLine := s.line // jlox reports the opening line, not the closing one

	for !s.atEnd() && s.peek() != '"' {
		s.advance() // advance tracks newlines, so multiline strings bump s.line
	}

	if s.atEnd() {
		s.errorf("unterminated string")
		tok := s.make(token.ILLEGAL)
		tok.Line = startLine
		return tok
	}

	s.advance() // closing quote

	tok := s.make(token.STRING)
	tok.Line = startLine
	tok.Literal = string(s.src[s.start+1 : s.cur-1])
	return tok
}
