package scanner

import (
	"strconv"

	"github.com/juniper-lang/juniper/lang/token"
)

// number scans a NUMBER literal: digits, optionally followed by a '.' and
// more digits. A trailing '.' not followed by a digit is not part of the
// literal (it is a separate DOT token, e.g. for method calls on a number
// literal written without parens).
func (s *Scanner) number() token.Token {
	for !s.atEnd() && isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for !s.atEnd() && isDigit(s.peek()) {
			s.advance()
		}
	}

	lit := s.lexeme()
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.errorf("invalid number literal %q", lit)
		v = 0
	}
	tok := s.make(token.NUMBER)
	tok.Literal = v
	return tok
}
