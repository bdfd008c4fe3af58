package maincmd

import (
	"fmt"

	"github.com/juniper-lang/juniper/internal/cli"
	"github.com/juniper-lang/juniper/lang/diag"
	"github.com/juniper-lang/juniper/lang/interp"
)

// Run parses, resolves and interprets the source file at path, writing
// program output to stdio.Stdout. It returns the process exit code:
// cli.ExitOK on success, cli.ExitDataErr on a compile-time error,
// cli.ExitSoftErr on a runtime error.
func Run(stdio cli.Stdio, path string) int {
	src, err := readFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return cli.ExitDataErr
	}
	return RunSource(stdio, src)
}

// RunSource interprets src directly against a fresh Interpreter. Used by
// Run; the REPL does not use this, since it must keep one Interpreter
// alive across lines so declarations persist between them.
func RunSource(stdio cli.Stdio, src []byte) int {
	i := interp.New(stdio.Stdout)
	stmts, err := compile(i, src)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return cli.ExitDataErr
	}

	if err := i.Interpret(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, runtimeMessage(err))
		return cli.ExitSoftErr
	}
	return cli.ExitOK
}

func runtimeMessage(err error) string {
	if rerr, ok := err.(*interp.RuntimeError); ok {
		return diag.RuntimeMessage(rerr.Error(), rerr.Token.Line)
	}
	return err.Error()
}
