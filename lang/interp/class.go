package interp

import "github.com/juniper-lang/juniper/lang/value"

// Class is a callable runtime value representing a class declaration.
// Calling it constructs a new Instance; its arity is the arity of its own
// or an inherited "init" method, or 0 if none is defined.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*UserFunction
}

func (c *Class) String() string   { return c.Name }
func (c *Class) TypeName() string { return "class" }

// FindMethod looks up a method by name on c or, failing that, walks the
// superclass chain. It returns the unbound method.
func (c *Class) FindMethod(name string) (*UserFunction, bool) {
	for cls := c; cls != nil; cls = cls.Superclass {
		if m, ok := cls.Methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// Arity is the arity of "init" if defined anywhere in the inheritance
// chain, else 0.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance of c. If c (or an ancestor) defines
// "init", it is bound to the new instance and invoked with args; the
// instance is returned regardless of what "init" returns, per the
// at-most-one-return-value rule for initializers.
func (c *Class) Call(i *Interpreter, args []value.Value) (value.Value, error) {
	inst := &Instance{Class: c, Fields: make(map[string]value.Value)}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(inst).Call(i, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
