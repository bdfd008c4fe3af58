package parser

import (
	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative and reinterprets its left-hand side: a
// VariableExpr becomes an AssignExpr target, a GetExpr becomes a SetExpr
// target, anything else is a syntax error — exactly the trick the
// reference grammar uses to avoid a separate lvalue grammar.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.matchKind(token.EQ) {
		eq := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		}
		p.errorAt(eq, "Invalid assignment target.")
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.matchKind(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.matchKind(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.matchKind(token.BANG_EQ, token.EQ_EQ) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.matchKind(token.GT, token.GT_EQ, token.LT, token.LT_EQ) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.matchKind(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.matchKind(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.matchKind(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.matchKind(token.LPAREN):
			expr = p.finishCall(expr)
		case p.matchKind(token.DOT):
			name := p.consume(token.IDENT, "Expect property name after '.'.")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.matchKind(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RPAREN, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	ln := p.peek().Line
	switch {
	case p.matchKind(token.FALSE):
		return &ast.LiteralExpr{Value: false, Ln: ln}
	case p.matchKind(token.TRUE):
		return &ast.LiteralExpr{Value: true, Ln: ln}
	case p.matchKind(token.NIL):
		return &ast.LiteralExpr{Value: nil, Ln: ln}
	case p.matchKind(token.NUMBER, token.STRING):
		return &ast.LiteralExpr{Value: p.previous().Literal, Ln: ln}
	case p.matchKind(token.SUPER):
		kw := p.previous()
		p.consume(token.DOT, "Expect '.' after 'super'.")
		method := p.consume(token.IDENT, "Expect superclass method name.")
		return &ast.SuperExpr{Keyword: kw, Method: method}
	case p.matchKind(token.THIS):
		return &ast.ThisExpr{Keyword: p.previous()}
	case p.matchKind(token.IDENT):
		return &ast.VariableExpr{Name: p.previous()}
	case p.matchKind(token.LPAREN):
		expr := p.expression()
		p.consume(token.RPAREN, "Expect ')' after expression.")
		return &ast.GroupingExpr{Inner: expr, Ln: ln}
	}

	p.errorAtCurrent("Expect expression.")
	panic(errParse{})
}
