// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the resolver and the interpreter.
//
// Expressions and statements are deliberately disjoint node families: a
// block cannot appear where a value is required, and a bare expression
// cannot appear where a statement is required. Every node is a pointer to
// its concrete struct, which is what gives it the stable identity the
// resolver needs to key its side-table (see lang/resolver).
package ast

// Node is implemented by every expression and statement node.
type Node interface {
	// Line reports the source line most closely associated with the node,
	// for error reporting.
	Line() int

	// Walk visits the node's direct children, in evaluation order.
	Walk(v Visitor)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// String renders a node using the debug printer (see printer.go).
func String(n Node) string {
	var p Printer
	return p.sprint(n)
}
