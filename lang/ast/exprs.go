package ast

import "github.com/juniper-lang/juniper/lang/token"

type (
	// LiteralExpr is a literal nil, boolean, number, or string value.
	LiteralExpr struct {
		Value interface{} // nil, bool, float64, or string
		Ln    int
	}

	// UnaryExpr is a unary operator expression: !right or -right.
	UnaryExpr struct {
		Op    token.Token
		Right Expr
	}

	// BinaryExpr is a binary operator expression: left op right.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// GroupingExpr is a parenthesized expression.
	GroupingExpr struct {
		Inner Expr
		Ln    int
	}

	// LogicalExpr is a short-circuiting "and"/"or" expression.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// VariableExpr is a reference to a variable by name.
	VariableExpr struct {
		Name token.Token
	}

	// AssignExpr assigns Value to the variable Name.
	AssignExpr struct {
		Name  token.Token
		Value Expr
	}

	// CallExpr calls Callee with Args. Paren is the token of the call's
	// closing parenthesis, used to report arity/not-callable errors.
	CallExpr struct {
		Callee Expr
		Paren  token.Token
		Args   []Expr
	}

	// GetExpr reads property Name off Object.
	GetExpr struct {
		Object Expr
		Name   token.Token
	}

	// SetExpr assigns Value to property Name on Object.
	SetExpr struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr is a reference to the receiver inside a method body.
	ThisExpr struct {
		Keyword token.Token
	}

	// SuperExpr is a reference to a superclass method: super.Method.
	SuperExpr struct {
		Keyword token.Token
		Method  token.Token
	}
)

func (e *LiteralExpr) Line() int   { return e.Ln }
func (e *UnaryExpr) Line() int     { return e.Op.Line }
func (e *BinaryExpr) Line() int    { return e.Op.Line }
func (e *GroupingExpr) Line() int  { return e.Ln }
func (e *LogicalExpr) Line() int   { return e.Op.Line }
func (e *VariableExpr) Line() int  { return e.Name.Line }
func (e *AssignExpr) Line() int    { return e.Name.Line }
func (e *CallExpr) Line() int      { return e.Paren.Line }
func (e *GetExpr) Line() int       { return e.Name.Line }
func (e *SetExpr) Line() int       { return e.Name.Line }
func (e *ThisExpr) Line() int      { return e.Keyword.Line }
func (e *SuperExpr) Line() int     { return e.Keyword.Line }

func (e *LiteralExpr) Walk(v Visitor)  {}
func (e *UnaryExpr) Walk(v Visitor)    { Walk(v, e.Right) }
func (e *BinaryExpr) Walk(v Visitor)   { Walk(v, e.Left); Walk(v, e.Right) }
func (e *GroupingExpr) Walk(v Visitor) { Walk(v, e.Inner) }
func (e *LogicalExpr) Walk(v Visitor)  { Walk(v, e.Left); Walk(v, e.Right) }
func (e *VariableExpr) Walk(v Visitor) {}
func (e *AssignExpr) Walk(v Visitor)   { Walk(v, e.Value) }
func (e *CallExpr) Walk(v Visitor) {
	Walk(v, e.Callee)
	for _, a := range e.Args {
		Walk(v, a)
	}
}
func (e *GetExpr) Walk(v Visitor)  { Walk(v, e.Object) }
func (e *SetExpr) Walk(v Visitor)  { Walk(v, e.Object); Walk(v, e.Value) }
func (e *ThisExpr) Walk(v Visitor) {}
func (e *SuperExpr) Walk(v Visitor) {}

func (*LiteralExpr) exprNode()  {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*GroupingExpr) exprNode() {}
func (*LogicalExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
func (*ThisExpr) exprNode()     {}
func (*SuperExpr) exprNode()    {}
