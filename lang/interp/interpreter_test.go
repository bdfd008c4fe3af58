package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/interp"
	"github.com/juniper-lang/juniper/lang/token"
)

// ident, num and run below build and run tiny ASTs by hand,
// matching the resolver's depth annotations exactly, since this package
// tests the evaluator in isolation from the parser and resolver.

func ident(name string) token.Token { return token.Token{Kind: token.IDENT, Lexeme: name, Line: 1} }

func num(n float64) *ast.LiteralExpr { return &ast.LiteralExpr{Value: n} }

func run(t *testing.T, stmts []ast.Stmt, resolve func(i *interp.Interpreter)) string {
	t.Helper()
	var out bytes.Buffer
	i := interp.New(&out)
	if resolve != nil {
		resolve(i)
	}
	err := i.Interpret(stmts)
	require.NoError(t, err)
	return out.String()
}

func TestPrintHelloWorld(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.PrintStmt{Expr: &ast.LiteralExpr{Value: "hello, world"}},
	}
	out := run(t, stmts, nil)
	assert.Equal(t, "hello, world\n", out)
}

func TestBlockShadowing(t *testing.T) {
	// var a = "outer";
	// { var a = "inner"; print a; }
	// print a;
	outerInit := &ast.VarStmt{Name: ident("a"), Initializer: &ast.LiteralExpr{Value: "outer"}}
	innerInit := &ast.VarStmt{Name: ident("a"), Initializer: &ast.LiteralExpr{Value: "inner"}}
	innerPrint := &ast.PrintStmt{Expr: &ast.VariableExpr{Name: ident("a")}}
	outerPrint := &ast.PrintStmt{Expr: &ast.VariableExpr{Name: ident("a")}}

	stmts := []ast.Stmt{
		outerInit,
		&ast.BlockStmt{Stmts: []ast.Stmt{innerInit, innerPrint}},
		outerPrint,
	}
	out := run(t, stmts, func(i *interp.Interpreter) {
		i.Resolve(innerPrint.Expr, 0)
	})
	assert.Equal(t, "inner\nouter\n", out)
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	// fun makeCounter() {
	//   var count = 0;
	//   fun inc() { count = count + 1; print count; }
	//   return inc;
	// }
	// var counter = makeCounter();
	// counter(); counter();
	countRef1 := &ast.VariableExpr{Name: ident("count")}
	assign := &ast.AssignExpr{
		Name:  ident("count"),
		Value: &ast.BinaryExpr{Left: countRef1, Op: token.Token{Kind: token.PLUS, Lexeme: "+", Line: 1}, Right: num(1)},
	}
	countRef2 := &ast.VariableExpr{Name: ident("count")}
	incBody := []ast.Stmt{
		&ast.ExpressionStmt{Expr: assign},
		&ast.PrintStmt{Expr: countRef2},
	}
	incDecl := &ast.FunctionStmt{Name: ident("inc"), Body: incBody}
	incRef := &ast.VariableExpr{Name: ident("inc")}

	makeCounterBody := []ast.Stmt{
		&ast.VarStmt{Name: ident("count"), Initializer: num(0)},
		incDecl,
		&ast.ReturnStmt{Value: incRef},
	}
	makeCounterDecl := &ast.FunctionStmt{Name: ident("makeCounter"), Body: makeCounterBody}

	counterVar := &ast.VarStmt{
		Name:        ident("counter"),
		Initializer: &ast.CallExpr{Callee: &ast.VariableExpr{Name: ident("makeCounter")}, Paren: token.Token{Line: 1}},
	}
	call1 := &ast.ExpressionStmt{Expr: &ast.CallExpr{Callee: &ast.VariableExpr{Name: ident("counter")}, Paren: token.Token{Line: 1}}}
	call2 := &ast.ExpressionStmt{Expr: &ast.CallExpr{Callee: &ast.VariableExpr{Name: ident("counter")}, Paren: token.Token{Line: 1}}}

	stmts := []ast.Stmt{makeCounterDecl, counterVar, call1, call2}
	out := run(t, stmts, func(i *interp.Interpreter) {
		// "count" lives in makeCounter's call frame, one hop out from
		// the call frame inc's own body executes in.
		i.Resolve(countRef1, 1)
		i.Resolve(assign, 1)
		i.Resolve(countRef2, 1)
		// "inc" is defined in makeCounter's own call frame.
		i.Resolve(incRef, 0)
	})
	assert.Equal(t, "1\n2\n", out)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	fn := &ast.FunctionStmt{Name: ident("f"), Params: []token.Token{ident("a")}, Body: nil}
	call := &ast.CallExpr{
		Callee: &ast.VariableExpr{Name: ident("f")},
		Paren:  token.Token{Line: 7},
		Args:   nil,
	}
	stmts := []ast.Stmt{fn, &ast.ExpressionStmt{Expr: call}}

	var out bytes.Buffer
	i := interp.New(&out)
	err := i.Interpret(stmts)
	require.Error(t, err)

	rerr, ok := err.(*interp.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, interp.ArityMismatch, rerr.Kind)
	assert.True(t, strings.Contains(rerr.Error(), "Expected 1 arguments but got 0"))
}

func TestInheritanceAndSuper(t *testing.T) {
	// class Animal { speak() { print "..."; } }
	// class Dog < Animal { speak() { print "Woof"; super.speak(); } }
	// var d = Dog(); d.speak();
	animalSpeak := &ast.FunctionStmt{Name: ident("speak"), Body: []ast.Stmt{
		&ast.PrintStmt{Expr: &ast.LiteralExpr{Value: "..."}},
	}}
	animal := &ast.ClassStmt{Name: ident("Animal"), Methods: []*ast.FunctionStmt{animalSpeak}}

	superRef := &ast.SuperExpr{Keyword: ident("super"), Method: ident("speak")}
	dogSpeak := &ast.FunctionStmt{Name: ident("speak"), Body: []ast.Stmt{
		&ast.PrintStmt{Expr: &ast.LiteralExpr{Value: "Woof"}},
		&ast.ExpressionStmt{Expr: &ast.CallExpr{Callee: superRef, Paren: token.Token{Line: 1}}},
	}}
	dog := &ast.ClassStmt{
		Name:       ident("Dog"),
		Superclass: &ast.VariableExpr{Name: ident("Animal")},
		Methods:    []*ast.FunctionStmt{dogSpeak},
	}

	dVar := &ast.VarStmt{
		Name:        ident("d"),
		Initializer: &ast.CallExpr{Callee: &ast.VariableExpr{Name: ident("Dog")}, Paren: token.Token{Line: 1}},
	}
	getSpeak := &ast.GetExpr{Object: &ast.VariableExpr{Name: ident("d")}, Name: ident("speak")}
	callSpeak := &ast.ExpressionStmt{Expr: &ast.CallExpr{Callee: getSpeak, Paren: token.Token{Line: 1}}}

	stmts := []ast.Stmt{animal, dog, dVar, callSpeak}
	out := run(t, stmts, func(i *interp.Interpreter) {
		// Inside a bound method body: the call frame encloses the
		// "this" environment, which encloses the "super" environment —
		// two hops out from where the body statements execute.
		i.Resolve(superRef, 2)
	})
	assert.Equal(t, "Woof\n...\n", out)
}

func TestInitAlwaysReturnsInstance(t *testing.T) {
	// class Point { init(x) { this.x = x; return; } }
	// var p = Point(3);
	thisX := &ast.SetExpr{Object: &ast.ThisExpr{Keyword: ident("this")}, Name: ident("x"), Value: &ast.VariableExpr{Name: ident("x")}}
	initFn := &ast.FunctionStmt{Name: ident("init"), Params: []token.Token{ident("x")}, Body: []ast.Stmt{
		&ast.ExpressionStmt{Expr: thisX},
		&ast.ReturnStmt{},
	}}
	class := &ast.ClassStmt{Name: ident("Point"), Methods: []*ast.FunctionStmt{initFn}}
	pVar := &ast.VarStmt{
		Name: ident("p"),
		Initializer: &ast.CallExpr{
			Callee: &ast.VariableExpr{Name: ident("Point")},
			Paren:  token.Token{Line: 1},
			Args:   []ast.Expr{num(3)},
		},
	}
	getX := &ast.GetExpr{Object: &ast.VariableExpr{Name: ident("p")}, Name: ident("x")}
	printX := &ast.PrintStmt{Expr: getX}

	stmts := []ast.Stmt{class, pVar, printX}
	out := run(t, stmts, func(i *interp.Interpreter) {
		// Bind wraps the method's closure in a "this" scope one hop
		// outside the call frame init's own body executes in.
		i.Resolve(thisX.Object, 1)
		// The parameter "x" lives in the call frame itself.
		i.Resolve(thisX.Value, 0)
	})
	assert.Equal(t, "3\n", out)
}
