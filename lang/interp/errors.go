package interp

import (
	"github.com/juniper-lang/juniper/lang/token"
	"github.com/juniper-lang/juniper/lang/value"
)

// RuntimeErrorKind classifies the runtime errors the evaluator can raise.
type RuntimeErrorKind int

const (
	OperandMustBeNumber RuntimeErrorKind = iota
	OperandsMustBeNumbers
	OperandsMustBeTwoNumbersOrTwoStrings
	UndefinedVariable
	UndefinedProperty
	NotCallable
	ArityMismatch
	OnlyInstancesHaveProperties
	OnlyInstancesHaveFields
	SuperclassMustBeAClass
)

// RuntimeError is the single error an interpreter run can raise. It carries
// the token whose line is reported alongside the message, and aborts the
// current Interpret call, unwinding every block and function frame above
// it.
type RuntimeError struct {
	Token token.Token
	Kind  RuntimeErrorKind
	Msg   string
}

func (e *RuntimeError) Error() string { return e.Msg }

// returnSignal is thrown (via panic/recover) to unwind a function call when
// a return statement executes. It is never an error: UserFunction.Call recovers it
// at the function-frame boundary and never lets it escape as a runtime
// failure. Keeping it distinct from RuntimeError, and recovering it only at
// the one place that should observe it, keeps control-flow unwinding from
// ever being mistaken for a reportable failure.
type returnSignal struct {
	value value.Value
}
