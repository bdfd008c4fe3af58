// Package maincmd implements the logic behind each juniper subcommand:
// tokenize, parse, resolve, run, repl. Each function takes a cli.Stdio
// and returns the process exit code, independent of any flag-parsing
// framework, so cmd/juniper only has to wire cobra commands to them.
package maincmd

import (
	"os"

	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/interp"
	"github.com/juniper-lang/juniper/lang/parser"
	"github.com/juniper-lang/juniper/lang/resolver"
)

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// compile parses and resolves src against i, returning the resolved
// statements ready for i.Interpret. A non-nil error is always a
// compile-time diagnostic list; the caller must report it and must not
// call Interpret.
func compile(i *interp.Interpreter, src []byte) ([]ast.Stmt, error) {
	stmts, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	if err := resolver.New(i).Resolve(stmts); err != nil {
		return nil, err
	}
	return stmts, nil
}
