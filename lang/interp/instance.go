package interp

import (
	"github.com/juniper-lang/juniper/lang/token"
	"github.com/juniper-lang/juniper/lang/value"
)

// Instance is a runtime object created by calling a Class: a reference to
// its class and its own mutable field bindings.
type Instance struct {
	Class  *Class
	Fields map[string]value.Value
}

func (inst *Instance) String() string   { return inst.Class.Name + " instance" }
func (inst *Instance) TypeName() string { return "instance" }

// Get looks up property name on the instance: its own fields first, then
// a method bound to this instance found by walking the class's
// inheritance chain. It fails with UndefinedProperty if neither exists.
func (inst *Instance) Get(name token.Token) (value.Value, error) {
	if v, ok := inst.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := inst.Class.FindMethod(name.Lexeme); ok {
		return m.Bind(inst), nil
	}
	return nil, &RuntimeError{Token: name, Kind: UndefinedProperty, Msg: "Undefined property '" + name.Lexeme + "'."}
}

// Set assigns value to property name on the instance, creating the field
// if it does not already exist.
func (inst *Instance) Set(name token.Token, v value.Value) {
	inst.Fields[name.Lexeme] = v
}
