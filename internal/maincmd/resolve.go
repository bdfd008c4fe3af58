package maincmd

import (
	"fmt"

	"github.com/juniper-lang/juniper/internal/cli"
	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/interp"
	"github.com/juniper-lang/juniper/lang/parser"
	"github.com/juniper-lang/juniper/lang/resolver"
)

// Resolve parses and resolves the source file at path, writing the AST
// dump followed by a one-line summary, to stdio.Stdout. Resolution
// errors (undeclared "this"/"super", duplicate locals, and the like) are
// reported to stdio.Stderr without ever interpreting the program.
func Resolve(stdio cli.Stdio, path string) int {
	src, err := readFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return cli.ExitDataErr
	}

	stmts, err := parser.Parse(src)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return cli.ExitDataErr
	}

	i := interp.New(stdio.Stdout)
	if err := resolver.New(i).Resolve(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return cli.ExitDataErr
	}

	p := ast.Printer{Output: stdio.Stdout}
	if err := p.Print(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return cli.ExitDataErr
	}
	fmt.Fprintf(stdio.Stdout, "resolved %d top-level statement(s), no binding errors\n", len(stmts))
	return cli.ExitOK
}
