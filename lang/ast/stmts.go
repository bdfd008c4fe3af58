package ast

import "github.com/juniper-lang/juniper/lang/token"

type (
	// ExpressionStmt evaluates Expr and discards the result.
	ExpressionStmt struct {
		Expr Expr
	}

	// PrintStmt evaluates Expr and writes its stringified value followed by
	// a newline to standard output.
	PrintStmt struct {
		Keyword token.Token
		Expr    Expr
	}

	// VarStmt declares Name in the current environment, bound to the value
	// of Initializer, or to nil if Initializer is nil.
	VarStmt struct {
		Name        token.Token
		Initializer Expr // may be nil
	}

	// BlockStmt executes Stmts in a new environment nested inside the
	// current one.
	BlockStmt struct {
		Stmts []Stmt
		Ln    int
	}

	// IfStmt executes Then if Cond is truthy, else Else (which may be nil).
	IfStmt struct {
		Cond Expr
		Then Stmt
		Else Stmt // may be nil
		Ln   int
	}

	// WhileStmt executes Body repeatedly while Cond is truthy.
	WhileStmt struct {
		Cond Expr
		Body Stmt
		Ln   int
	}

	// FunctionStmt declares a named function (or, when nested inside a
	// ClassStmt, a method).
	FunctionStmt struct {
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// ReturnStmt unwinds the current function call, yielding the value of
	// Value (or nil if Value is nil).
	ReturnStmt struct {
		Keyword token.Token
		Value   Expr // may be nil
	}

	// ClassStmt declares a class, optionally inheriting from Superclass.
	ClassStmt struct {
		Name       token.Token
		Superclass *VariableExpr // may be nil
		Methods    []*FunctionStmt
	}
)

func (s *ExpressionStmt) Line() int { return s.Expr.Line() }
func (s *PrintStmt) Line() int      { return s.Keyword.Line }
func (s *VarStmt) Line() int        { return s.Name.Line }
func (s *BlockStmt) Line() int      { return s.Ln }
func (s *IfStmt) Line() int         { return s.Ln }
func (s *WhileStmt) Line() int      { return s.Ln }
func (s *FunctionStmt) Line() int   { return s.Name.Line }
func (s *ReturnStmt) Line() int     { return s.Keyword.Line }
func (s *ClassStmt) Line() int      { return s.Name.Line }

func (s *ExpressionStmt) Walk(v Visitor) { Walk(v, s.Expr) }
func (s *PrintStmt) Walk(v Visitor)      { Walk(v, s.Expr) }
func (s *VarStmt) Walk(v Visitor) {
	if s.Initializer != nil {
		Walk(v, s.Initializer)
	}
}
func (s *BlockStmt) Walk(v Visitor) {
	for _, st := range s.Stmts {
		Walk(v, st)
	}
}
func (s *IfStmt) Walk(v Visitor) {
	Walk(v, s.Cond)
	Walk(v, s.Then)
	if s.Else != nil {
		Walk(v, s.Else)
	}
}
func (s *WhileStmt) Walk(v Visitor) {
	Walk(v, s.Cond)
	Walk(v, s.Body)
}
func (s *FunctionStmt) Walk(v Visitor) {
	for _, st := range s.Body {
		Walk(v, st)
	}
}
func (s *ReturnStmt) Walk(v Visitor) {
	if s.Value != nil {
		Walk(v, s.Value)
	}
}
func (s *ClassStmt) Walk(v Visitor) {
	if s.Superclass != nil {
		Walk(v, s.Superclass)
	}
	for _, m := range s.Methods {
		Walk(v, m)
	}
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ClassStmt) stmtNode()      {}
