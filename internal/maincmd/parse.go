package maincmd

import (
	"fmt"

	"github.com/juniper-lang/juniper/internal/cli"
	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/parser"
)

// Parse parses the source file at path and writes an indented dump of its
// AST to stdio.Stdout.
func Parse(stdio cli.Stdio, path string) int {
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

	p := ast.Printer{Output: stdio.Stdout}
	if err := p.Print(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return cli.ExitDataErr
	}
	return cli.ExitOK
}
