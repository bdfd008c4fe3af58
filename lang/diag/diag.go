// Package diag collects and formats the compile-time diagnostics produced
// by the scanner, parser and resolver, and the single runtime error
// produced by the interpreter.
package diag

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Diagnostic is one compile-time error, tagged with the source line it
// was detected on and an optional "where" clause identifying the token
// or construct at fault.
type Diagnostic struct {
	Line  int
	Where string // e.g. " at 'foo'", or "" for a plain message
	Msg   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Msg)
}

// Diagnostics is an appendable, sortable collection of Diagnostic values,
// modeled on the collect-then-sort-then-join shape of go/scanner.ErrorList.
type Diagnostics []Diagnostic

// Add appends a diagnostic with no "where" clause.
func (d *Diagnostics) Add(line int, msg string) {
	*d = append(*d, Diagnostic{Line: line, Msg: msg})
}

// AddAt appends a diagnostic with a "where" clause, e.g. AddAt(3, " at
// end", "Expect ';' after value.").
func (d *Diagnostics) AddAt(line int, where, msg string) {
	*d = append(*d, Diagnostic{Line: line, Where: where, Msg: msg})
}

// Len reports the number of collected diagnostics.
func (d Diagnostics) Len() int { return len(d) }

// Sort orders diagnostics by line, then by message, for stable output.
func (d Diagnostics) Sort() {
	slices.SortFunc(d, func(a, b Diagnostic) int {
		if a.Line != b.Line {
			return cmp.Compare(a.Line, b.Line)
		}
		return strings.Compare(a.Msg, b.Msg)
	})
}

// Err returns nil if d is empty, else an error whose message joins every
// diagnostic on its own line, in source order.
func (d Diagnostics) Err() error {
	if len(d) == 0 {
		return nil
	}
	d.Sort()
	var sb strings.Builder
	for i, diag := range d {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(diag.String())
	}
	return errString(sb.String())
}

type errString string

func (e errString) Error() string { return string(e) }

// RuntimeMessage formats a runtime error for stderr, per the two-line
// "<message>\n[line N]" convention distinct from compile-time diagnostics.
func RuntimeMessage(msg string, line int) string {
	return fmt.Sprintf("%s\n[line %d]", msg, line)
}
