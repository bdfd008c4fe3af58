package interp

import (
	"fmt"

	"github.com/juniper-lang/juniper/lang/token"
	"github.com/juniper-lang/juniper/lang/value"
)

// Environment is a name-to-value mapping, optionally chained to an
// enclosing environment. A name may exist at most once per Environment;
// shadowing a name from an outer scope is done by defining it again in a
// fresh, inner Environment rather than overwriting the outer binding.
type Environment struct {
	bindings  map[string]value.Value
	enclosing *Environment
}

// NewEnvironment creates an environment enclosed by enclosing, which may be
// nil for the globals environment.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{bindings: make(map[string]value.Value), enclosing: enclosing}
}

// Define unconditionally binds name to v in this environment. Redeclaring a
// name already present in this same environment is allowed (the resolver
// is responsible for rejecting local redeclarations before this ever runs).
func (e *Environment) Define(name string, v value.Value) {
	e.bindings[name] = v
}

// Get returns the value bound to name, walking enclosing environments if
// it is not found in this one.
func (e *Environment) Get(name token.Token) (value.Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.bindings[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, &RuntimeError{Token: name, Kind: UndefinedVariable, Msg: "Undefined variable '" + name.Lexeme + "'."}
}

// Assign rebinds name to v in the nearest enclosing environment where it is
// already defined. It never creates a new binding.
func (e *Environment) Assign(name token.Token, v value.Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.bindings[name.Lexeme]; ok {
			env.bindings[name.Lexeme] = v
			return nil
		}
	}
	return &RuntimeError{Token: name, Kind: UndefinedVariable, Msg: "Undefined variable '" + name.Lexeme + "'."}
}

// GetAt returns the binding for name exactly depth enclosing links away,
// with no fallback. The resolver guarantees such a binding exists; a miss
// here is a bug in the interpreter, not a user-facing error.
func (e *Environment) GetAt(depth int, name string) value.Value {
	env := e.ancestor(depth)
	v, ok := env.bindings[name]
	if !ok {
		panic(fmt.Sprintf("internal error: resolved binding %q not found at depth %d", name, depth))
	}
	return v
}

// AssignAt rebinds name exactly depth enclosing links away, with no
// fallback.
func (e *Environment) AssignAt(depth int, name string, v value.Value) {
	e.ancestor(depth).bindings[name] = v
}

func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.enclosing
	}
	return env
}
