package maincmd

import (
	"bufio"
	"fmt"

	"github.com/juniper-lang/juniper/internal/cli"
	"github.com/juniper-lang/juniper/internal/replio"
	"github.com/juniper-lang/juniper/lang/interp"
)

// REPL runs an interactive read-eval-print loop over stdio, keeping one
// Interpreter alive across lines so variable, function and class
// declarations persist between them. debug prints a session banner
// tagging the run with a UUID, for correlating a pasted transcript with
// a bug report.
func REPL(stdio cli.Stdio, debug bool) int {
	interactive := replio.Interactive(stdio.Stdin)

	if banner := replio.Banner(interactive, debug); banner != "" {
		fmt.Fprintln(stdio.Stderr, banner)
	}

	i := interp.New(stdio.Stdout)
	scan := bufio.NewScanner(stdio.Stdin)
	for {
		fmt.Fprint(stdio.Stdout, replio.Prompt(interactive))
		if !scan.Scan() {
			return cli.ExitOK
		}
		line := scan.Text()
		if line == "" {
			continue
		}

		stmts, err := compile(i, []byte(line))
		if err != nil {
			fmt.Fprintln(stdio.Stderr, replio.Error(interactive, err.Error()))
			continue
		}
		if err := i.Interpret(stmts); err != nil {
			fmt.Fprintln(stdio.Stderr, replio.Error(interactive, runtimeMessage(err)))
		}
	}
}
