package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/parser"
)

func TestParseExpressionStatement(t *testing.T) {
	stmts, err := parser.Parse([]byte(`1 + 2 * 3;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	es, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)

	bin, ok := es.Expr.(*ast.BinaryExpr)
	require.True(t, ok)

	left, ok := bin.Left.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, 1.0, left.Value)

	right, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, 2.0, right.Left.(*ast.LiteralExpr).Value)
	assert.Equal(t, 3.0, right.Right.(*ast.LiteralExpr).Value)
}

func TestParseVarAndPrint(t *testing.T) {
	stmts, err := parser.Parse([]byte(`var greeting = "hi"; print greeting;`))
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "greeting", v.Name.Lexeme)
	assert.Equal(t, "hi", v.Initializer.(*ast.LiteralExpr).Value)

	p, ok := stmts[1].(*ast.PrintStmt)
	require.True(t, ok)
	assert.Equal(t, "greeting", p.Expr.(*ast.VariableExpr).Name.Lexeme)
}

func TestParseAssignmentTarget(t *testing.T) {
	stmts, err := parser.Parse([]byte(`a = 2;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	es := stmts[0].(*ast.ExpressionStmt)
	assign, ok := es.Expr.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
}

func TestParseInvalidAssignmentTargetIsError(t *testing.T) {
	_, err := parser.Parse([]byte(`1 + 2 = 3;`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target.")
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, err := parser.Parse([]byte(`for (var i = 0; i < 3; i = i + 1) print i;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Stmts, 2)

	_, ok = outer.Stmts[0].(*ast.VarStmt)
	require.True(t, ok)

	while, ok := outer.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)

	loopBody, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, loopBody.Stmts, 2)
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	stmts, err := parser.Parse([]byte(`
class Animal {
  speak() { print "..."; }
}
class Dog < Animal {
  speak() { print "Woof"; }
}
`))
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	dog, ok := stmts[1].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "Dog", dog.Name.Lexeme)
	require.NotNil(t, dog.Superclass)
	assert.Equal(t, "Animal", dog.Superclass.Name.Lexeme)
	require.Len(t, dog.Methods, 1)
	assert.Equal(t, "speak", dog.Methods[0].Name.Lexeme)
}

func TestParseMissingSemicolonReportsLineAndRecovers(t *testing.T) {
	_, err := parser.Parse([]byte("print 1\nprint 2;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[line 1]")
	assert.Contains(t, err.Error(), "Expect ';' after value.")
}

func TestParseTooManyArgumentsReportsError(t *testing.T) {
	var args string
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ", "
		}
		args += "1"
	}
	_, err := parser.Parse([]byte("f(" + args + ");"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't have more than 255 arguments.")
}
