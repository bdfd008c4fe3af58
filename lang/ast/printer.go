package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes an indented, human-readable dump of an AST, used by the
// juniper parse/resolve debug subcommands.
type Printer struct {
	Output io.Writer
}

// Print writes a dump of every statement in stmts to p.Output.
func (p *Printer) Print(stmts []Stmt) error {
	var sb strings.Builder
	for _, s := range stmts {
		depth := 0
		p.walkWithDepth(s, &depth, &sb)
	}
	_, err := io.WriteString(p.Output, sb.String())
	return err
}

// walkWithDepth writes n and recursively its children, indented by depth.
func (p *Printer) walkWithDepth(n Node, depth *int, sb *strings.Builder) {
	if n == nil {
		return
	}
	fmt.Fprintf(sb, "%s%s\n", strings.Repeat("  ", *depth), describe(n))
	*depth++
	n.Walk(printChildren{depth: depth, sb: sb})
	*depth--
}

type printChildren struct {
	depth *int
	sb    *strings.Builder
}

func (pc printChildren) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit {
		*pc.depth--
		return nil
	}
	fmt.Fprintf(pc.sb, "%s%s\n", strings.Repeat("  ", *pc.depth), describe(n))
	*pc.depth++
	return pc
}

// sprint renders a single node and its descendants to a string.
func (p *Printer) sprint(n Node) string {
	var sb strings.Builder
	depth := 0
	p.walkWithDepth(n, &depth, &sb)
	return sb.String()
}

func describe(n Node) string {
	switch n := n.(type) {
	case *LiteralExpr:
		return fmt.Sprintf("literal %#v", n.Value)
	case *UnaryExpr:
		return "unary " + n.Op.Lexeme
	case *BinaryExpr:
		return "binary " + n.Op.Lexeme
	case *GroupingExpr:
		return "group"
	case *LogicalExpr:
		return "logical " + n.Op.Lexeme
	case *VariableExpr:
		return "variable " + n.Name.Lexeme
	case *AssignExpr:
		return "assign " + n.Name.Lexeme
	case *CallExpr:
		return fmt.Sprintf("call (%d args)", len(n.Args))
	case *GetExpr:
		return "get ." + n.Name.Lexeme
	case *SetExpr:
		return "set ." + n.Name.Lexeme
	case *ThisExpr:
		return "this"
	case *SuperExpr:
		return "super." + n.Method.Lexeme
	case *ExpressionStmt:
		return "expr stmt"
	case *PrintStmt:
		return "print"
	case *VarStmt:
		return "var " + n.Name.Lexeme
	case *BlockStmt:
		return fmt.Sprintf("block (%d stmts)", len(n.Stmts))
	case *IfStmt:
		return "if"
	case *WhileStmt:
		return "while"
	case *FunctionStmt:
		return "fun " + n.Name.Lexeme
	case *ReturnStmt:
		return "return"
	case *ClassStmt:
		return "class " + n.Name.Lexeme
	default:
		return fmt.Sprintf("%T", n)
	}
}
