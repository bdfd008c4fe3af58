package resolver

// FunctionType tracks what kind of function body the resolver is
// currently inside, so it can validate "return" and "this"/"super" in
// context.
type FunctionType int

const (
	FuncNone FunctionType = iota
	FuncFunction
	FuncMethod
	FuncInitializer
)

// ClassType tracks what kind of class body the resolver is currently
// inside, so it can validate "this" and "super".
type ClassType int

const (
	ClassNone ClassType = iota
	ClassClass
	ClassSubclass
)

// scope is one lexical block's variable table: each name maps to whether
// it has finished initializing (declared but not yet defined names catch
// "var a = a;" self-reference as an error).
type scope map[string]bool

// scopes is a stack of nested scopes, innermost last, mirroring the
// Environment chain the interpreter will build at the same nesting.
type scopes []scope

func (s *scopes) push()     { *s = append(*s, scope{}) }
func (s *scopes) pop()      { *s = (*s)[:len(*s)-1] }
func (s scopes) empty() bool { return len(s) == 0 }
func (s scopes) top() scope  { return s[len(s)-1] }
