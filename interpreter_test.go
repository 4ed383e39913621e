package lox

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

// interpret resolves and runs source on in, returning the runtime error.
func interpret(t *testing.T, in *Interpreter, source string) error {
	t.Helper()
	statements, rec := resolveSource(t, in, source)
	if len(rec.static) != 0 {
		t.Fatalf("static errors: %v", rec.static)
	}
	return in.Interpret(statements)
}

func TestRuntimeErrorKinds(t *testing.T) {
	tests := []struct {
		source  string
		kind    ErrorKind
		message string
		line    int
	}{
		{"1 / 0;", DivisionByZero, "Division by zero.", 1},
		{"print 1;\n4 / (2 - 2);", DivisionByZero, "Division by zero.", 2},
		{`-"a";`, TypeError, "Operand must be a number.", 1},
		{"1 + nil;", TypeError, "Operands must be two numbers or two strings.", 1},
		{`"a" + 1;`, TypeError, "Operands must be two numbers or two strings.", 1},
		{`1 < "2";`, TypeError, "Operands must be numbers.", 1},
		{"missing;", UndefinedVariable, "Undefined variable 'missing'.", 1},
		{"missing = 1;", UndefinedVariable, "Undefined variable 'missing'.", 1},
		{"class A {} A().x;", UndefinedProperty, "Undefined property 'x'.", 1},
		{"class A {} A.nope();", UndefinedProperty, "Undefined property 'nope'.", 1},
		{"class A { class s() {} } A().s();", UndefinedProperty, "Undefined property 's'.", 1},
		{"class A {} class B < A { m() { super.m(); } } B().m();", UndefinedProperty, "Undefined property 'm'.", 1},
		{"fun f(a) {} f();", ArityMismatch, "Expected 1 arguments but got 0.", 1},
		{"class A { init(a, b) {} } A(1);", ArityMismatch, "Expected 2 arguments but got 1.", 1},
		{"clock(1);", ArityMismatch, "Expected 0 arguments but got 1.", 1},
		{`"s"();`, NotCallable, "Can only call functions and classes.", 1},
		{"nil();", NotCallable, "Can only call functions and classes.", 1},
		{"1.x;", NotInstance, "Only instances have properties.", 1},
		{"nil.x = 1;", NotInstance, "Only instances have fields.", 1},
		{"class A {} A.x = 1;", NotInstance, "Only instances have fields.", 1},
		{"var v = 1; class A < v {}", InvalidSuperclass, "Superclass must be a class.", 1},
	}
	for _, tt := range tests {
		in := NewInterpreter(WithOutput(&bytes.Buffer{}), WithReporter(&recorder{}))
		err := interpret(t, in, tt.source)

		var re *RuntimeError
		if !errors.As(err, &re) {
			t.Errorf("%q: err = %v, want a *RuntimeError", tt.source, err)
			continue
		}
		if re.Kind != tt.kind || re.Message != tt.message || re.Token.Line != tt.line {
			t.Errorf("%q: got %v %q at line %d, want %v %q at line %d",
				tt.source, re.Kind, re.Message, re.Token.Line, tt.kind, tt.message, tt.line)
		}
	}
}

func TestInterpretStopsAtFirstRuntimeError(t *testing.T) {
	var out bytes.Buffer
	rec := &recorder{}
	in := NewInterpreter(WithOutput(&out), WithReporter(rec))

	if err := interpret(t, in, "print 1;\nprint nil + 1;\nprint 2;"); err == nil {
		t.Fatal("expected a runtime error")
	}
	if out.String() != "1\n" {
		t.Errorf("output = %q, want %q", out.String(), "1\n")
	}
	if len(rec.runtime) != 1 || rec.runtime[0] != "Operands must be two numbers or two strings. [line 2]" {
		t.Errorf("reported %v", rec.runtime)
	}

	// The interpreter stays usable after an error.
	out.Reset()
	if err := interpret(t, in, "print 3;"); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if out.String() != "3\n" {
		t.Errorf("second run output = %q", out.String())
	}
}

func TestInterpreterEnvironmentRestoredAfterError(t *testing.T) {
	in := NewInterpreter(WithOutput(&bytes.Buffer{}), WithReporter(&recorder{}))
	_ = interpret(t, in, "fun f() { { var x = 1; x / 0; } } f();")
	if in.environment != in.globals {
		t.Error("environment was not restored to globals after an error")
	}
}

func TestClockUsesInjectedTime(t *testing.T) {
	var out bytes.Buffer
	now := func() time.Time { return time.Unix(1700000000, int64(500*time.Millisecond)) }
	in := NewInterpreter(WithOutput(&out), WithReporter(&recorder{}), WithClock(now))

	if err := interpret(t, in, "print clock(); print clock;"); err != nil {
		t.Fatal(err)
	}
	if want := "1700000000.5\n<native fn>\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestInteractiveEchoesExpressions(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(WithOutput(&out), WithReporter(&recorder{}), WithInteractive(true))

	if err := interpret(t, in, `var a = 2; a * 3; "s"; a = 5; nil;`); err != nil {
		t.Fatal(err)
	}
	if want := "6\ns\n5\nnil\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{3.0, "3"},
		{-2.0, "-2"},
		{2.5, "2.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e21, "1000000000000000000000"},
		{"text", "text"},
		{NewClock(nil), "<native fn>"},
	}
	for _, tt := range tests {
		if got := stringify(tt.value); got != tt.want {
			t.Errorf("stringify(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestTruthinessAndEquality(t *testing.T) {
	for _, v := range []interface{}{nil, false} {
		if isTruthy(v) {
			t.Errorf("isTruthy(%v) = true", v)
		}
	}
	for _, v := range []interface{}{true, 0.0, "", NewClock(nil)} {
		if !isTruthy(v) {
			t.Errorf("isTruthy(%v) = false", v)
		}
	}

	if !isEqual(nil, nil) || isEqual(nil, false) || isEqual(0.0, "0") || !isEqual("a", "a") {
		t.Error("isEqual misbehaves on mixed values")
	}
}
