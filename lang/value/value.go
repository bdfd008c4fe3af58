// Package value defines the runtime value model shared by the interpreter:
// the Nil/Bool/Number/String/Callable/Instance sum type, truthiness,
// equality, and stringification.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is any runtime value a juniper program can produce: nil, a bool, a
// float64, a string, a Callable, or an *Instance. There is no dedicated
// wrapper type — Go's nil, bool, float64 and string serve directly as the
// Nil/Bool/Number/String cases, and Callable/*Instance (defined in
// lang/interp, which imports this package) serve as the other two.
type Value = interface{}

// IsTruthy reports the truthiness of v: nil and false are falsey, every
// other value (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal reports whether a and b are equal under juniper's equality rules:
// nil equals only nil, numbers compare by IEEE equality, strings by
// code-point equality, and Callable/*Instance compare by identity. Values
// of different kinds are never equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		// Callables and *Instance are all pointers, so plain interface
		// equality gives identity comparison for both.
		return a == b
	}
}

// Typed is implemented by runtime values whose kind name is not implied by
// their Go type alone (Callable and *Instance both live in lang/interp,
// which imports this package, so they report their own name rather than
// this package knowing about them).
type Typed interface {
	TypeName() string
}

// TypeName returns a short, lowercase description of v's kind.
func TypeName(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case Typed:
		return v.TypeName()
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Stringify renders v the way "print" does: nil as "nil", bools as
// "true"/"false", numbers as the shortest round-trippable decimal with a
// trailing ".0" dropped for integral values, strings verbatim, and
// Callable/*Instance via their own String().
func Stringify(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(v)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// FormatFloat never produces a trailing ".0" for integral values (it
	// prints "3" for 3.0), but it does use exponent notation for very large
	// or very small magnitudes where we want plain decimal; fall back
	// to 'f' formatting in that case, which likewise prints no ".0".
	if strings.ContainsAny(s, "eE") {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}
