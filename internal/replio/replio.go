// Package replio provides the REPL's interactive presentation layer: tty
// detection and styled prompt/error/banner output. Nothing here affects
// program semantics — only what the terminal looks like when attached to
// one, never the bytes a piped script's output is checked against.
package replio

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// Interactive reports whether r is a terminal the REPL should print a
// styled prompt and banner to, rather than a pipe feeding it a script.
func Interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Prompt returns the "> " prompt, styled when interactive, or "" when
// not (so piped input never gets prompt bytes mixed into its output).
func Prompt(interactive bool) string {
	if !interactive {
		return ""
	}
	return promptStyle.Render("> ")
}

// Error renders an error line, styled when interactive, or plain
// otherwise.
func Error(interactive bool, msg string) string {
	if !interactive {
		return msg
	}
	return errorStyle.Render(msg)
}

// Banner returns a session banner tagged with a fresh UUID when debug is
// true, to correlate a pasted REPL transcript with a bug report; "" when
// debug is false.
func Banner(interactive, debug bool) string {
	if !debug {
		return ""
	}
	line := fmt.Sprintf("session %s", uuid.NewString())
	if interactive {
		return bannerStyle.Render(line)
	}
	return line
}
