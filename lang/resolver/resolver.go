// Package resolver implements the static resolver: a pass between parsing
// and evaluation that walks the AST once, matching every variable
// reference to the scope that declares it and recording how many
// enclosing environments separate them. The interpreter uses that
// recorded depth to look variables up directly instead of walking the
// Environment chain and guessing.
package resolver

import (
	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/diag"
	"github.com/juniper-lang/juniper/lang/token"
)

// Interpreter is the subset of *interp.Interpreter the resolver depends
// on, so resolver tests can use a recording fake instead of a live
// evaluator.
type Interpreter interface {
	Resolve(expr ast.Expr, depth int)
}

// Resolver walks a parsed program and annotates it, which is a one-time
// side effect: it never mutates the AST itself, only the Interpreter's
// side table.
type Resolver struct {
	interp Interpreter
	scopes scopes

	currentFunction FunctionType
	currentClass    ClassType

	diags diag.Diagnostics
}

// New returns a Resolver that reports resolved depths to i.
func New(i Interpreter) *Resolver {
	return &Resolver{interp: i}
}

// Resolve walks stmts, reporting every binding error it finds. A non-nil
// error means the program must not be executed.
func (r *Resolver) Resolve(stmts []ast.Stmt) error {
	r.resolveStmts(stmts)
	return r.diags.Err()
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.BlockStmt:
		r.scopes.push()
		r.resolveStmts(s.Stmts)
		r.scopes.pop()

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, FuncFunction)

	case *ast.ReturnStmt:
		if r.currentFunction == FuncNone {
			r.errorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == FuncInitializer {
				r.errorAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic("resolver: unexpected statement type")
	}
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = ClassClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errorAt(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = ClassSubclass
		r.resolveExpr(s.Superclass)

		r.scopes.push()
		r.scopes.top()["super"] = true
	}

	r.scopes.push()
	r.scopes.top()["this"] = true

	for _, m := range s.Methods {
		ft := FuncMethod
		if m.Name.Lexeme == "init" {
			ft = FuncInitializer
		}
		r.resolveFunction(m, ft)
	}

	r.scopes.pop()
	if s.Superclass != nil {
		r.scopes.pop()
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, ft FunctionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = ft
	defer func() { r.currentFunction = enclosingFunction }()

	r.scopes.push()
	defer r.scopes.pop()

	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// no subexpressions, no identifiers

	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.VariableExpr:
		if !r.scopes.empty() {
			if ready, declaredHere := r.scopes.top()[e.Name.Lexeme]; declaredHere && !ready {
				r.errorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.currentClass == ClassNone {
			r.errorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.SuperExpr:
		switch r.currentClass {
		case ClassNone:
			r.errorAt(e.Keyword, "Can't use 'super' outside of a class.")
		case ClassClass:
			r.errorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)

	default:
		panic("resolver: unexpected expression type")
	}
}

func (r *Resolver) declare(name token.Token) {
	if r.scopes.empty() {
		return
	}
	sc := r.scopes.top()
	if _, ok := sc[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	sc[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if r.scopes.empty() {
		return
	}
	r.scopes.top()[name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward, and as soon
// as it finds a scope that declares name, reports that distance to the
// interpreter. No match means the binding is global and is left
// unresolved, for the interpreter to find in its globals environment.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.interp.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) errorAt(tok token.Token, msg string) {
	r.diags.AddAt(tok.Line, " at '"+tok.Lexeme+"'", msg)
}
