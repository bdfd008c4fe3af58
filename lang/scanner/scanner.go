// Package scanner turns source bytes into a stream of tokens for the parser.
package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/juniper-lang/juniper/lang/token"
)

// ErrorHandler is called for every lexical error encountered while
// scanning. The scanner never halts on an error: it records the problem and
// keeps producing tokens, the same panic-mode discipline the parser applies
// at the statement level.
type ErrorHandler func(line int, msg string)

// Scanner tokenizes a single source file.
type Scanner struct {
	src []byte
	err ErrorHandler

	start int // start offset of the token being scanned
	cur   int // offset of the next unread byte
	line  int // line of cur
}

// Init prepares s to scan src, reporting lexical errors to err.
func (s *Scanner) Init(src []byte, err ErrorHandler) {
	s.src = src
	s.err = err
	s.start = 0
	s.cur = 0
	s.line = 1
}

// ScanAll scans the whole source and returns every token, the last of which
// is always EOF.
func ScanAll(src []byte, err ErrorHandler) []token.Token {
	var s Scanner
	s.Init(src, err)

	var toks []token.Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (s *Scanner) atEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) advance() byte {
	b := s.src[s.cur]
	s.cur++
	if b == '\n' {
		s.line++
	}
	return b
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.cur] != want {
		return false
	}
	s.cur++
	return true
}

func (s *Scanner) lexeme() string { return string(s.src[s.start:s.cur]) }

func (s *Scanner) errorf(format string, args ...interface{}) {
	s.err(s.line, fmt.Sprintf(format, args...))
}

// Scan returns the next token. Once it returns a token.EOF token, subsequent
// calls keep returning EOF.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespaceAndComments()
	s.start = s.cur

	if s.atEnd() {
		return s.make(token.EOF)
	}

	c := s.advance()
	switch {
	case isDigit(c):
		return s.number()
	case isAlpha(c):
		return s.identifier()
	}

	switch c {
	case '(':
		return s.make(token.LPAREN)
	case ')':
		return s.make(token.RPAREN)
	case '{':
		return s.make(token.LBRACE)
	case '}':
		return s.make(token.RBRACE)
	case ',':
		return s.make(token.COMMA)
	case '.':
		return s.make(token.DOT)
	case '-':
		return s.make(token.MINUS)
	case '+':
		return s.make(token.PLUS)
	case ';':
		return s.make(token.SEMI)
	case '*':
		return s.make(token.STAR)
	case '/':
		return s.make(token.SLASH)
	case '!':
		if s.match('=') {
			return s.make(token.BANG_EQ)
		}
		return s.make(token.BANG)
	case '=':
		if s.match('=') {
			return s.make(token.EQ_EQ)
		}
		return s.make(token.EQ)
	case '<':
		if s.match('=') {
			return s.make(token.LT_EQ)
		}
		return s.make(token.LT)
	case '>':
		if s.match('=') {
			return s.make(token.GT_EQ)
		}
		return s.make(token.GT)
	case '"':
		return s.string()
	}

	if c >= utf8.RuneSelf {
		s.errorf("invalid character %#U", rune(c))
	} else {
		s.errorf("unexpected character %q", string(c))
	}
	return s.make(token.ILLEGAL)
}

func (s *Scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\r', '\t', '\n':
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				s.skipLineComment()
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) make(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Lexeme: s.lexeme(), Line: s.line}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

func (s *Scanner) identifier() token.Token {
	for !s.atEnd() && isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lit := s.lexeme()
	kind, ok := token.Keywords[lit]
	if !ok {
		kind = token.IDENT
	}
	return s.make(kind)
}
