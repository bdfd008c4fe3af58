// Command juniper is the compiler and interpreter for the juniper
// scripting language: a single binary that can run a script, dump the
// output of any pipeline stage for debugging, or start an interactive
// REPL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/juniper-lang/juniper/internal/cli"
	"github.com/juniper-lang/juniper/internal/maincmd"
)

var (
	// placeholder values, replaced on build
	version   = "{v}" // must be N.N[.N]
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	os.Exit(run())
}

func run() int {
	stdio := cli.Current()
	var debug bool
	exitCode := cli.ExitOK

	root := &cobra.Command{
		Use:           "juniper",
		Short:         "Compiler and all-in-one tool for the juniper programming language",
		Version:       fmt.Sprintf("%s (%s)", version, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = maincmd.REPL(stdio, debug)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "print extra diagnostic information")

	runCmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a juniper script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = maincmd.Run(stdio, args[0])
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = maincmd.REPL(stdio, debug)
			return nil
		},
	}

	tokenizeCmd := &cobra.Command{
		Use:   "tokenize <script>",
		Short: "Scan a script and print its tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = maincmd.Tokenize(stdio, args[0])
			return nil
		},
	}

	parseCmd := &cobra.Command{
		Use:   "parse <script>",
		Short: "Parse a script and print its abstract syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = maincmd.Parse(stdio, args[0])
			return nil
		},
	}

	resolveCmd := &cobra.Command{
		Use:   "resolve <script>",
		Short: "Resolve a script's variable bindings and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = maincmd.Resolve(stdio, args[0])
			return nil
		},
	}

	root.AddCommand(runCmd, replCmd, tokenizeCmd, parseCmd, resolveCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return cli.ExitDataErr
	}
	return exitCode
}
