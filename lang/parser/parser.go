// Package parser implements the recursive-descent parser that turns a
// token stream into the expression/statement AST.
package parser

import (
	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/diag"
	"github.com/juniper-lang/juniper/lang/scanner"
	"github.com/juniper-lang/juniper/lang/token"
)

// maxArgs is the hard limit on call arguments and function parameters,
// matching the reference implementation's own 8-bit argument count.
const maxArgs = 255

// errParse unwinds parsing of the current statement back to declaration's
// recover. It is never observed by a caller: every parse error is
// reported through diags instead.
type errParse struct{}

// Parser turns a token slice into statements, collecting every syntax
// error it finds in diags rather than stopping at the first one.
type Parser struct {
	toks  []token.Token
	cur   int
	diags diag.Diagnostics
}

// Parse scans src, parses it, and returns the resulting statements. The
// returned error, if non-nil, joins every scan and parse diagnostic
// found; stmts may still be partially populated when err is non-nil, but
// callers should treat a non-nil err as "do not execute this program".
func Parse(src []byte) ([]ast.Stmt, error) {
	var diags diag.Diagnostics
	toks := scanner.ScanAll(src, diags.Add)

	p := &Parser{toks: toks}
	stmts := p.parseProgram()
	diags = append(diags, p.diags...)
	return stmts, diags.Err()
}

func (p *Parser) parseProgram() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// declaration parses one top-level-or-block declaration, recovering from
// a syntax error by synchronizing to the next likely statement boundary
// instead of aborting the whole parse.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(errParse); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.matchKind(token.CLASS):
		return p.classDeclaration()
	case p.matchKind(token.FUN):
		return p.function("function")
	case p.matchKind(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) atEnd() bool           { return p.peek().Kind == token.EOF }
func (p *Parser) peek() token.Token     { return p.toks[p.cur] }
func (p *Parser) previous() token.Token { return p.toks[p.cur-1] }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *Parser) check(k token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *Parser) matchKind(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAtCurrent(msg)
	panic(errParse{})
}

func (p *Parser) errorAtCurrent(msg string) {
	p.errorAt(p.peek(), msg)
}

func (p *Parser) errorAt(tok token.Token, msg string) {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	p.diags.AddAt(tok.Line, where, msg)
}

// synchronize discards tokens until it reaches a likely statement
// boundary, so one syntax error doesn't cascade into spurious ones.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMI {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
