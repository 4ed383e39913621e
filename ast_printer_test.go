package lox

import (
	"testing"
)

func TestAstPrinterExpr(t *testing.T) {
	expr := NewBinary(
		NewUnary(NewToken(MINUS, "-", nil, 1), NewLiteral(123.0)),
		NewToken(STAR, "*", nil, 1),
		NewGrouping(NewLiteral(45.67)))

	if got, want := NewAstPrinter().printExpr(expr), "(* (- 123) (group 45.67))"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestAstPrinterStmts(t *testing.T) {
	name := NewToken(IDENTIFIER, "x", nil, 1)
	statements := []Stmt{
		NewVar(name, NewLiteral("hi")),
		NewBlock([]Stmt{
			NewPrint(NewVariable(name)),
			NewExpression(NewAssign(name, NewLiteral(nil))),
		}),
	}
	want := "(var x = \"hi\")\n{(print x) (; (= x nil))}\n"
	if got := NewAstPrinter().Print(statements); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
