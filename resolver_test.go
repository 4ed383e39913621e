package lox

import (
	"strings"
	"testing"
)

func resolveSource(t *testing.T, in *Interpreter, source string) ([]Stmt, *recorder) {
	t.Helper()
	statements, rec := parse(source)
	if len(rec.static) != 0 {
		t.Fatalf("parse errors: %v", rec.static)
	}
	NewResolver(in, rec).Resolve(statements)
	return statements, rec
}

func TestResolverErrors(t *testing.T) {
	tests := []struct {
		source string
		errors []string
	}{
		{"return 1;", []string{"[line 1] Error at 'return': Can't return from top-level code."}},
		{"{ var a = 1; var a = 2; }", []string{"[line 1] Error at 'a': Already a variable with this name in this scope."}},
		{"fun f(a, a) {}", []string{"[line 1] Error at 'a': Already a variable with this name in this scope."}},
		{"{ var b = b; }", []string{"[line 1] Error at 'b': Can't read local variable in its own initializer."}},
		{"fun f() { var c = c + 1; }", []string{"[line 1] Error at 'c': Can't read local variable in its own initializer."}},
		{"print this;", []string{"[line 1] Error at 'this': Can't use 'this' outside of a class."}},
		{"fun f() { return this; }", []string{"[line 1] Error at 'this': Can't use 'this' outside of a class."}},
		{"super.m();", []string{"[line 1] Error at 'super': Can't use 'super' outside of a class."}},
		{"class A { m() { super.m(); } }", []string{"[line 1] Error at 'super': Can't use 'super' in a class with no superclass."}},
		{"class A < A {}", []string{"[line 1] Error at 'A': A class can't inherit from itself."}},
		{"class A { init() { return 1; } }", []string{"[line 1] Error at 'return': Can't return a value from an initializer."}},
		{"return;\n{ var x; var x; }", []string{
			"[line 1] Error at 'return': Can't return from top-level code.",
			"[line 2] Error at 'x': Already a variable with this name in this scope.",
		}},

		{"{ var a = a = 1; }", nil},
		{"fun f() { var a = 1; { var a = a = 2; } }", nil},
		{"var a; var a;", nil},
		{"var a = 1; { var a = a + 1; }", nil},
		{"{ var clock = clock; }", nil},
		{"fun f() { var c = 1; { var c = c; } }", nil},
		{"class A { init() { return; } }", nil},
		{"class A { class make() { return this(); } }", nil},
		{"class A {} class B < A { m() { return super.m; } }", nil},
		{"fun f() { return g(); } fun g() { return 1; }", nil},
	}
	for _, tt := range tests {
		_, rec := resolveSource(t, NewInterpreter(WithReporter(&recorder{})), tt.source)
		if got, want := strings.Join(rec.static, "\n"), strings.Join(tt.errors, "\n"); got != want {
			t.Errorf("%q:\n got %s\nwant %s", tt.source, got, want)
		}
	}
}

func TestResolverDistances(t *testing.T) {
	in := NewInterpreter(WithReporter(&recorder{}))
	statements, rec := resolveSource(t, in, `
var g = 0;
{
  var a = 1;
  {
    fun f() { print a; print g; }
  }
}`)
	if len(rec.static) != 0 {
		t.Fatalf("errors: %v", rec.static)
	}

	outer := statements[1].(*Block)
	inner := outer.statements[1].(*Block)
	f := inner.statements[0].(*Function)
	local := f.body[0].(*Print).expression
	global := f.body[1].(*Print).expression

	// function scope -> inner block -> outer block
	if distance, ok := in.locals[local]; !ok || distance != 2 {
		t.Errorf("a: distance %d (recorded %v), want 2", distance, ok)
	}
	if _, ok := in.locals[global]; ok {
		t.Errorf("g: globals must not be recorded")
	}
}

func TestResolverShadowedInitializerSeesOuterBinding(t *testing.T) {
	in := NewInterpreter(WithReporter(&recorder{}))
	statements, rec := resolveSource(t, in, "{ var a = 1; { var a = a; } }")
	if len(rec.static) != 0 {
		t.Fatalf("errors: %v", rec.static)
	}
	inner := statements[0].(*Block).statements[1].(*Block)
	initializer := inner.statements[0].(*Var).initializer
	if distance := in.locals[initializer]; distance != 1 {
		t.Errorf("initializer distance = %d, want 1", distance)
	}
}

func TestResolverAssignInInitializerTargetsNewBinding(t *testing.T) {
	in := NewInterpreter(WithReporter(&recorder{}))
	statements, rec := resolveSource(t, in, "{ var a = 1; { var a = a = 2; } }")
	if len(rec.static) != 0 {
		t.Fatalf("errors: %v", rec.static)
	}
	inner := statements[0].(*Block).statements[1].(*Block)
	assign := inner.statements[0].(*Var).initializer
	if distance, ok := in.locals[assign]; !ok || distance != 0 {
		t.Errorf("assignment distance = %d (recorded %v), want 0", distance, ok)
	}
}

func TestResolverSeesGlobalsFromEarlierRuns(t *testing.T) {
	in := NewInterpreter(WithReporter(&recorder{}))
	in.globals.Define("earlier", 1.0)

	_, rec := resolveSource(t, in, "{ var earlier = earlier; var later = later; }")
	want := "[line 1] Error at 'later': Can't read local variable in its own initializer."
	if got := strings.Join(rec.static, "\n"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
