package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniper-lang/juniper/lang/ast"
	"github.com/juniper-lang/juniper/lang/parser"
	"github.com/juniper-lang/juniper/lang/resolver"
)

// recordingInterp implements resolver.Interpreter, recording every
// resolved depth keyed by the node's position in a fixed traversal order
// instead of by identity, since plain equality on interface values
// backed by different concrete pointers isn't useful for assertions.
type recordingInterp struct {
	depths []int
}

func (r *recordingInterp) Resolve(expr ast.Expr, depth int) {
	r.depths = append(r.depths, depth)
}

func parseOK(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	return stmts
}

func TestResolveBlockShadowing(t *testing.T) {
	stmts := parseOK(t, `
var a = "outer";
{
  var a = "inner";
  print a;
}
print a;
`)
	rec := &recordingInterp{}
	r := resolver.New(rec)
	require.NoError(t, r.Resolve(stmts))

	// Only the inner "print a" resolves locally (depth 0, the block
	// scope); the outer "print a" is a global reference and is never
	// recorded.
	assert.Equal(t, []int{0}, rec.depths)
}

func TestResolveClosureDepth(t *testing.T) {
	stmts := parseOK(t, `
fun makeCounter() {
  var count = 0;
  fun inc() {
    count = count + 1;
  }
  return inc;
}
`)
	rec := &recordingInterp{}
	r := resolver.New(rec)
	require.NoError(t, r.Resolve(stmts))

	// Inside inc: the read of "count" and the assignment target both
	// resolve one scope out, from inc's own body scope to makeCounter's.
	// Then "return inc" resolves in makeCounter's own scope (depth 0).
	assert.Equal(t, []int{1, 1, 0}, rec.depths)
}

func TestResolveSuperAndThisDepth(t *testing.T) {
	stmts := parseOK(t, `
class Animal {
  speak() { print "..."; }
}
class Dog < Animal {
  speak() {
    super.speak();
    print this;
  }
}
`)
	rec := &recordingInterp{}
	r := resolver.New(rec)
	require.NoError(t, r.Resolve(stmts))

	// Two resolvable references, both in Dog.speak. "super" sits two
	// scopes out from the method body (super-scope, then this-scope,
	// then the body's own scope); "this" sits one scope out.
	assert.Equal(t, []int{2, 1}, rec.depths)
}

func TestResolveDuplicateLocalIsError(t *testing.T) {
	stmts := parseOK(t, `{ var a = 1; var a = 2; }`)
	r := resolver.New(&recordingInterp{})
	err := r.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Already a variable with this name in this scope.")
}

func TestResolveSelfReferencingInitializerIsError(t *testing.T) {
	stmts := parseOK(t, `{ var a = a; }`)
	r := resolver.New(&recordingInterp{})
	err := r.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't read local variable in its own initializer.")
}

func TestResolveTopLevelReturnIsError(t *testing.T) {
	stmts := parseOK(t, `return 1;`)
	r := resolver.New(&recordingInterp{})
	err := r.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't return from top-level code.")
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	stmts := parseOK(t, `
class Foo {
  init() { return 1; }
}
`)
	r := resolver.New(&recordingInterp{})
	err := r.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't return a value from an initializer.")
}

func TestResolveClassInheritingFromItselfIsError(t *testing.T) {
	stmts := parseOK(t, `class Foo < Foo {}`)
	r := resolver.New(&recordingInterp{})
	err := r.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A class can't inherit from itself.")
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	stmts := parseOK(t, `print this;`)
	r := resolver.New(&recordingInterp{})
	err := r.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't use 'this' outside of a class.")
}

func TestResolveSuperOutsideClassIsError(t *testing.T) {
	stmts := parseOK(t, `
fun f() { super.speak(); }
`)
	r := resolver.New(&recordingInterp{})
	err := r.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't use 'super' outside of a class.")
}

func TestResolveSuperWithNoSuperclassIsError(t *testing.T) {
	stmts := parseOK(t, `
class Foo {
  speak() { super.speak(); }
}
`)
	r := resolver.New(&recordingInterp{})
	err := r.Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't use 'super' in a class with no superclass.")
}
