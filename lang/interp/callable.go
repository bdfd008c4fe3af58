package interp

import (
	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/value"
)

// Callable is any value that can appear as the callee of a CallExpr: a
// native function, a user-defined function or method, or a class (whose
// call constructs an instance).
type Callable interface {
	value.Typed
	Arity() int
	Call(i *Interpreter, args []value.Value) (value.Value, error)
	String() string
}

// NativeFunction wraps a host-provided function (the built-in clock, for
// instance) as a Callable.
type NativeFunction struct {
	Name string
	Ar   int
	Fn   func(i *Interpreter, args []value.Value) (value.Value, error)
}

func (n *NativeFunction) Arity() int { return n.Ar }
func (n *NativeFunction) Call(i *Interpreter, args []value.Value) (value.Value, error) {
	return n.Fn(i, args)
}
func (n *NativeFunction) String() string   { return "<native fn " + n.Name + ">" }
func (n *NativeFunction) TypeName() string { return "function" }

// UserFunction is a function or method declared in source: the AST of its
// declaration, the environment it closed over, and whether it is a class
// initializer (which always returns the bound instance, regardless of what
// its body returns).
type UserFunction struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (f *UserFunction) Arity() int { return len(f.Declaration.Params) }

func (f *UserFunction) String() string {
	return "<fn " + f.Declaration.Name.Lexeme + ">"
}

func (f *UserFunction) TypeName() string { return "function" }

// Bind returns a copy of f whose closure is a fresh environment, enclosing
// f's own closure, with "this" bound to inst. This is how an unbound
// method becomes a bound method.
func (f *UserFunction) Bind(inst *Instance) *UserFunction {
	env := NewEnvironment(f.Closure)
	env.Define("this", inst)
	return &UserFunction{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Call creates a new environment enclosing f's closure, binds each
// parameter to its argument, and executes the function body. A return
// statement inside the body unwinds to here via returnSignal.
func (f *UserFunction) Call(i *Interpreter, args []value.Value) (ret value.Value, err error) {
	env := NewEnvironment(f.Closure)
	for idx, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.IsInitializer {
				ret = f.Closure.GetAt(0, "this")
			} else {
				ret = sig.value
			}
		}
	}()

	if execErr := i.executeBlock(f.Declaration.Body, env); execErr != nil {
		return nil, execErr
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}
