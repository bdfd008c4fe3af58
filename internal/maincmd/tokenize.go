package maincmd

import (
	"fmt"

	"github.com/juniper-lang/juniper/internal/cli"
	"github.com/juniper-lang/juniper/lang/scanner"
)

// Tokenize scans the source file at path and writes one line per token to
// stdio.Stdout. The scanner never halts on a lexical error; every error
// found is reported to stdio.Stderr and reflected in the returned exit
// code.
func Tokenize(stdio cli.Stdio, path string) int {
	src, err := readFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return cli.ExitDataErr
	}

	var hadError bool
	toks := scanner.ScanAll(src, func(line int, msg string) {
		hadError = true
		fmt.Fprintf(stdio.Stderr, "[line %d] Error: %s\n", line, msg)
	})
	for _, tok := range toks {
		fmt.Fprintf(stdio.Stdout, "%-4d %-12s %q\n", tok.Line, tok.Kind, tok.Lexeme)
	}
	if hadError {
		return cli.ExitDataErr
	}
	return cli.ExitOK
}
