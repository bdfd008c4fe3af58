package parser

import (
	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/token"
)

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENT, "Expect class name.")

	var superclass *ast.VariableExpr
	if p.matchKind(token.LT) {
		supName := p.consume(token.IDENT, "Expect superclass name.")
		superclass = &ast.VariableExpr{Name: supName}
	}

	p.consume(token.LBRACE, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RBRACE, "Expect '}' after class body.")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.IDENT, "Expect "+kind+" name.")
	p.consume(token.LPAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENT, "Expect parameter name."))
			if !p.matchKind(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "Expect ')' after parameters.")

	p.consume(token.LBRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENT, "Expect variable name.")
	var init ast.Expr
	if p.matchKind(token.EQ) {
		init = p.expression()
	}
	p.consume(token.SEMI, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: init}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.matchKind(token.FOR):
		return p.forStatement()
	case p.matchKind(token.IF):
		return p.ifStatement()
	case p.matchKind(token.PRINT):
		return p.printStatement()
	case p.matchKind(token.RETURN):
		return p.returnStatement()
	case p.matchKind(token.WHILE):
		return p.whileStatement()
	case p.matchKind(token.LBRACE):
		ln := p.previous().Line
		return &ast.BlockStmt{Stmts: p.block(), Ln: ln}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	kw := p.previous()
	v := p.expression()
	p.consume(token.SEMI, "Expect ';' after value.")
	return &ast.PrintStmt{Keyword: kw, Expr: v}
}

func (p *Parser) returnStatement() ast.Stmt {
	kw := p.previous()
	var v ast.Expr
	if !p.check(token.SEMI) {
		v = p.expression()
	}
	p.consume(token.SEMI, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: kw, Value: v}
}

func (p *Parser) expressionStatement() ast.Stmt {
	e := p.expression()
	p.consume(token.SEMI, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: e}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RBRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStatement() ast.Stmt {
	ln := p.previous().Line
	p.consume(token.LPAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.matchKind(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els, Ln: ln}
}

func (p *Parser) whileStatement() ast.Stmt {
	ln := p.previous().Line
	p.consume(token.LPAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body, Ln: ln}
}

// forStatement desugars "for (init; cond; post) body" into the equivalent
// while-loop block: there is no ForStmt AST node.
func (p *Parser) forStatement() ast.Stmt {
	ln := p.previous().Line
	p.consume(token.LPAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.matchKind(token.SEMI):
		initializer = nil
	case p.matchKind(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMI) {
		cond = p.expression()
	}
	p.consume(token.SEMI, "Expect ';' after loop condition.")

	var post ast.Expr
	if !p.check(token.RPAREN) {
		post = p.expression()
	}
	p.consume(token.RPAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if post != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: post}}, Ln: ln}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{Value: true, Ln: ln}
	}
	body = &ast.WhileStmt{Cond: cond, Body: body, Ln: ln}

	if initializer != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{initializer, body}, Ln: ln}
	}
	return body
}
