// Package interp implements the tree-walking evaluator: the environment
// chain, runtime value model (Callable, Class, Instance), and the
// Interpreter itself, which executes a resolved AST and produces side
// effects (printed output) or a single runtime error.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/token"
	"github.com/juniper-lang/juniper/lang/value"
)

// Interpreter walks a resolved AST, evaluating expressions and executing
// statements against a chain of Environments.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int
	stdout      io.Writer
}

// New creates an Interpreter that writes "print" output to stdout. The
// globals environment is pre-populated with the native clock() function.
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	i := &Interpreter{
		Globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		stdout:      stdout,
	}
	globals.Define("clock", &NativeFunction{
		Name: "clock",
		Ar:   0,
		Fn: func(_ *Interpreter, _ []value.Value) (value.Value, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})
	return i
}

// Resolve records that expr, at evaluation time, resolves to a binding
// depth enclosing environments away from the one active when it is
// evaluated. Called by the resolver for every Variable, Assign, This and
// Super expression it can bind locally; expressions with no entry are
// looked up directly in Globals.
func (i *Interpreter) Resolve(expr ast.Expr, depth int) {
	i.locals[expr] = depth
}

// Interpret executes stmts in the globals environment. It returns the
// single runtime error encountered, if any; execution stops at the first
// one, unwinding every block and function frame above it.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evaluate(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := i.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.stdout, value.Stringify(v))
		return nil

	case *ast.VarStmt:
		var v value.Value
		if s.Initializer != nil {
			var err error
			v, err = i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.environment.Define(s.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return i.executeBlock(s.Stmts, NewEnvironment(i.environment))

	case *ast.IfStmt:
		cond, err := i.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if value.IsTruthy(cond) {
			return i.execute(s.Then)
		} else if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !value.IsTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &UserFunction{Declaration: s, Closure: i.environment}
		i.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var v value.Value
		if s.Value != nil {
			var err error
			v, err = i.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		panic(returnSignal{value: v})

	case *ast.ClassStmt:
		return i.executeClass(s)

	default:
		panic(fmt.Sprintf("interp: unexpected statement %T", stmt))
	}
}

// executeBlock runs stmts in env, restoring the interpreter's previous
// environment on every exit path (normal completion, a propagated runtime
// error, or a return-statement panic unwinding through it).
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		sv, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := sv.(*Class)
		if !ok {
			return &RuntimeError{Token: s.Superclass.Name, Kind: SuperclassMustBeAClass, Msg: "Superclass must be a class."}
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, nil)

	methodEnv := i.environment
	if superclass != nil {
		methodEnv = NewEnvironment(i.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*UserFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &UserFunction{
			Declaration:   m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	return i.environment.Assign(s.Name, class)
}

func (i *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return i.evaluate(e.Inner)

	case *ast.UnaryExpr:
		return i.evalUnary(e)

	case *ast.BinaryExpr:
		return i.evalBinary(e)

	case *ast.LogicalExpr:
		return i.evalLogical(e)

	case *ast.VariableExpr:
		return i.lookUpVariable(e.Name, e)

	case *ast.AssignExpr:
		return i.evalAssign(e)

	case *ast.CallExpr:
		return i.evalCall(e)

	case *ast.GetExpr:
		return i.evalGet(e)

	case *ast.SetExpr:
		return i.evalSet(e)

	case *ast.ThisExpr:
		return i.lookUpVariable(e.Keyword, e)

	case *ast.SuperExpr:
		return i.evalSuper(e)

	default:
		panic(fmt.Sprintf("interp: unexpected expression %T", expr))
	}
}

func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (value.Value, error) {
	if depth, ok := i.locals[expr]; ok {
		return i.environment.GetAt(depth, name.Lexeme), nil
	}
	return i.Globals.Get(name)
}

func (i *Interpreter) evalAssign(e *ast.AssignExpr) (value.Value, error) {
	v, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := i.locals[e]; ok {
		i.environment.AssignAt(depth, e.Name.Lexeme, v)
		return v, nil
	}
	if err := i.Globals.Assign(e.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) (value.Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.BANG:
		return !value.IsTruthy(right), nil
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, &RuntimeError{Token: e.Op, Kind: OperandMustBeNumber, Msg: "Operand must be a number."}
		}
		return -n, nil
	default:
		panic(fmt.Sprintf("interp: unexpected unary operator %v", e.Op.Kind))
	}
}

func (i *Interpreter) evalLogical(e *ast.LogicalExpr) (value.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if value.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !value.IsTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (value.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.MINUS, token.SLASH, token.STAR, token.GT, token.GT_EQ, token.LT, token.LT_EQ:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, &RuntimeError{Token: e.Op, Kind: OperandsMustBeNumbers, Msg: "Operands must be numbers."}
		}
		switch e.Op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.GT:
			return ln > rn, nil
		case token.GT_EQ:
			return ln >= rn, nil
		case token.LT:
			return ln < rn, nil
		case token.LT_EQ:
			return ln <= rn, nil
		}

	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, &RuntimeError{Token: e.Op, Kind: OperandsMustBeTwoNumbersOrTwoStrings, Msg: "Operands must be two numbers or two strings."}

	case token.EQ_EQ:
		return value.Equal(left, right), nil
	case token.BANG_EQ:
		return !value.Equal(left, right), nil
	}
	panic(fmt.Sprintf("interp: unexpected binary operator %v", e.Op.Kind))
}

func (i *Interpreter) evalCall(e *ast.CallExpr) (value.Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Kind: NotCallable, Msg: "Can only call functions and classes."}
	}
	if len(args) != fn.Arity() {
		return nil, &RuntimeError{Token: e.Paren, Kind: ArityMismatch, Msg: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args))}
	}
	return fn.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.GetExpr) (value.Value, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, &RuntimeError{Token: e.Name, Kind: OnlyInstancesHaveProperties, Msg: "Only instances have properties."}
	}
	return inst.Get(e.Name)
}

func (i *Interpreter) evalSet(e *ast.SetExpr) (value.Value, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, &RuntimeError{Token: e.Name, Kind: OnlyInstancesHaveFields, Msg: "Only instances have fields."}
	}
	v, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name, v)
	return v, nil
}

func (i *Interpreter) evalSuper(e *ast.SuperExpr) (value.Value, error) {
	depth := i.locals[e]
	superclass := i.environment.GetAt(depth, "super").(*Class)
	inst := i.environment.GetAt(depth-1, "this").(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, &RuntimeError{Token: e.Method, Kind: UndefinedProperty, Msg: "Undefined property '" + e.Method.Lexeme + "'."}
	}
	return method.Bind(inst), nil
}
