package lox

import (
	"strings"
	"testing"
)

func parse(source string) ([]Stmt, *recorder) {
	rec := &recorder{}
	tokens := NewScanner(source, rec).ScanTokens()
	return NewParser(tokens, rec).Parse(), rec
}

func TestParserShapes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"precedence", "print 1 + 2 * 3 - 4 / 2;", "(print (- (+ 1 (* 2 3)) (/ 4 2)))"},
		{"unary", "print !-x;", "(print (! (- x)))"},
		{"grouping", "print (1 + 2) * 3;", "(print (* (group (+ 1 2)) 3))"},
		{"comparison chain", "a < b == c >= d;", "(; (== (< a b) (>= c d)))"},
		{"logical", "a or b and c;", "(; (or a (and b c)))"},
		{"assignment is right associative", "a = b = 1;", "(; (= a (= b 1)))"},
		{"set", "a.b.c = 1;", "(; (= (. a b) c 1))"},
		{"calls", "f(1)(2, 3).g();", "(; (call (. (call (call f 1) 2 3) g)))"},
		{"literals", `print nil; print true; print "s"; print 1.5;`,
			"(print nil)\n(print true)\n(print \"s\")\n(print 1.5)"},
		{"var", "var a; var b = a;", "(var a)\n(var b = a)"},
		{"if", "if (a) print 1;", "(if a (print 1))"},
		{"dangling else binds to the nearest if", "if (a) if (b) print 1; else print 2;",
			"(if a (if-else b (print 1) (print 2)))"},
		{"while", "while (a) { a = false; }", "(while a {(; (= a false))})"},
		{"for desugars to while", "for (var i = 0; i < 3; i = i + 1) print i;",
			"{(var i = 0) (while (< i 3) {(print i) (; (= i (+ i 1)))})}"},
		{"for with no clauses", "for (;;) print 1;", "(while true (print 1))"},
		{"for with expression initializer", "for (i = 0; i < 1;) print i;",
			"{(; (= i 0)) (while (< i 1) (print i))}"},
		{"function", "fun f(a, b) { return a; } fun g() { return; }",
			"(fun f (a b) {(return a)})\n(fun g () {(return)})"},
		{"class", "class B < A { init(x) { this.x = x; } class make() { return super.make(); } }",
			"(class B < A (static make () {(return (call (super make)))}) (method init (x) {(; (= this x x))}))"},
		{"ternary", `x > 1 ? "a" : "b";`, `(; (?: (> x 1) "a" "b"))`},
		{"nested ternary", "a == 1 ? b : c != 2 ? d : e;", "(; (?: (== a 1) b (?: (!= c 2) d e)))"},
		{"ternary on a boolean literal", "true ? 1 : 2;", "(; (?: true 1 2))"},
		{"ternary binds looser than or", "a <= b ? c or d : e;", "(; (?: (<= a b) (or c d) e))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statements, rec := parse(tt.source)
			if len(rec.static) != 0 {
				t.Fatalf("errors: %v", rec.static)
			}
			got := strings.TrimSuffix(NewAstPrinter().Print(statements), "\n")
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		errors []string
		want   string
	}{
		{"missing semicolon at end", "print 1",
			[]string{"[line 1] Error at end: Expect ';' after value."}, ""},
		{"missing expression", "print ;",
			[]string{"[line 1] Error at ';': Expect expression."}, ""},
		{"recovers at the next statement", "print ; print 2;",
			[]string{"[line 1] Error at ';': Expect expression."}, "(print 2)"},
		{"recovers at a keyword", "var = 1 var b = 2;",
			[]string{"[line 1] Error at '=': Expect variable name."}, "(var b = 2)"},
		{"each bad statement is reported", "1 +; 2 +;\nprint 3;",
			[]string{
				"[line 1] Error at ';': Expect expression.",
				"[line 1] Error at ';': Expect expression.",
			}, "(print 3)"},
		{"invalid assignment target keeps parsing", "1 = 2; print 3;",
			[]string{"[line 1] Error at '=': Invalid assignment target."}, "(; 1)\n(print 3)"},
		{"ternary needs a comparison", "a ? 1 : 2; print 3;",
			[]string{"[line 1] Error at '?': Ternary condition must be a comparison."}, "(print 3)"},
		{"ternary on a call", "f() ? 1 : 2;",
			[]string{"[line 1] Error at '?': Ternary condition must be a comparison."}, ""},
		{"ternary on a logical", "a < b and c ? 1 : 2;",
			[]string{"[line 1] Error at '?': Ternary condition must be a comparison."}, ""},
		{"ternary without colon", "a < b ? 1;",
			[]string{"[line 1] Error at ';': Expect ':' after then branch of ternary."}, ""},
		{"super without method", "super;",
			[]string{"[line 1] Error at ';': Expect '.' after 'super'."}, ""},
		{"unclosed block", "{ print 1;",
			[]string{"[line 1] Error at end: Expect '}' after block."}, ""},
		{"class body", "class A { 1 }",
			[]string{"[line 1] Error at '1': Expect method name."}, ""},
		{"property name", "a.1;",
			[]string{"[line 1] Error at '1': Expect property name after '.'."}, ""},
		{"error line", "print 1;\n\nprint (2;",
			[]string{"[line 3] Error at ';': Expect ')' after expression."}, "(print 1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statements, rec := parse(tt.source)
			if got, want := strings.Join(rec.static, "\n"), strings.Join(tt.errors, "\n"); got != want {
				t.Errorf("errors:\n got %s\nwant %s", got, want)
			}
			got := strings.TrimSuffix(NewAstPrinter().Print(statements), "\n")
			if got != tt.want {
				t.Errorf("statements:\n got %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestParserArgumentLimit(t *testing.T) {
	list := func(prefix string, n int) string {
		parts := make([]string, n)
		for i := range parts {
			parts[i] = prefix
		}
		return strings.Join(parts, ", ")
	}

	statements, rec := parse("f(" + list("1", 255) + ");")
	if len(rec.static) != 0 || len(statements) != 1 {
		t.Errorf("255 arguments: errors %v, %d statements", rec.static, len(statements))
	}

	statements, rec = parse("f(" + list("1", 256) + ");")
	if want := "[line 1] Error at '1': Can't have more than 255 arguments."; strings.Join(rec.static, "\n") != want {
		t.Errorf("256 arguments: errors %v, want %v", rec.static, want)
	}
	if len(statements) != 1 {
		t.Errorf("256 arguments: got %d statements, want the call to survive", len(statements))
	}

	statements, rec = parse("fun f(" + list("p", 256) + ") {}")
	if want := "[line 1] Error at 'p': Can't have more than 255 parameters."; strings.Join(rec.static, "\n") != want {
		t.Errorf("256 parameters: errors %v, want %v", rec.static, want)
	}
	if len(statements) != 1 {
		t.Errorf("256 parameters: got %d statements, want 1", len(statements))
	}
}
