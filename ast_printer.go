package lox

import (
	"strings"
)

// AstPrinter renders syntax trees as parenthesized prefix notation. It is a
// debugging aid; nothing in the pipeline depends on it.
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// Print renders each statement on its own line.
func (printer *AstPrinter) Print(statements []Stmt) string {
	var sb strings.Builder
	for _, stmt := range statements {
		sb.WriteString(printer.printStmt(stmt))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (printer *AstPrinter) printExpr(expr Expr) string {
	s, _ := expr.accept(printer)
	return s.(string)
}

func (printer *AstPrinter) printStmt(stmt Stmt) string {
	s, _ := stmt.accept(printer)
	return s.(string)
}

func (printer *AstPrinter) parenthesize(name string, parts ...interface{}) (interface{}, error) {
	var sb strings.Builder
	sb.WriteString("(" + name)
	for _, part := range parts {
		sb.WriteByte(' ')
		switch p := part.(type) {
		case Expr:
			sb.WriteString(printer.printExpr(p))
		case Stmt:
			sb.WriteString(printer.printStmt(p))
		case *Token:
			sb.WriteString(p.Lexeme)
		case []Stmt:
			sb.WriteString(printer.block(p))
		case string:
			sb.WriteString(p)
		}
	}
	sb.WriteString(")")
	return sb.String(), nil
}

func (printer *AstPrinter) block(statements []Stmt) string {
	parts := make([]string, 0, len(statements))
	for _, stmt := range statements {
		parts = append(parts, printer.printStmt(stmt))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func (printer *AstPrinter) function(keyword string, stmt *Function) string {
	params := make([]string, 0, len(stmt.params))
	for _, param := range stmt.params {
		params = append(params, param.Lexeme)
	}
	s, _ := printer.parenthesize(keyword+" "+stmt.name.Lexeme, "("+strings.Join(params, " ")+")", stmt.body)
	return s.(string)
}

func (printer *AstPrinter) visitBlockStmt(stmt *Block) (interface{}, error) {
	return printer.block(stmt.statements), nil
}

func (printer *AstPrinter) visitClassStmt(stmt *Class) (interface{}, error) {
	name := "class " + stmt.name.Lexeme
	if stmt.superclass != nil {
		name += " < " + stmt.superclass.name.Lexeme
	}
	parts := make([]interface{}, 0, len(stmt.staticMethods)+len(stmt.methods))
	for _, method := range stmt.staticMethods {
		parts = append(parts, printer.function("static", method))
	}
	for _, method := range stmt.methods {
		parts = append(parts, printer.function("method", method))
	}
	return printer.parenthesize(name, parts...)
}

func (printer *AstPrinter) visitExpressionStmt(stmt *Expression) (interface{}, error) {
	return printer.parenthesize(";", stmt.expression)
}

func (printer *AstPrinter) visitFunctionStmt(stmt *Function) (interface{}, error) {
	return printer.function("fun", stmt), nil
}

func (printer *AstPrinter) visitIfStmt(stmt *If) (interface{}, error) {
	if stmt.elseBranch == nil {
		return printer.parenthesize("if", stmt.condition, stmt.thenBranch)
	}
	return printer.parenthesize("if-else", stmt.condition, stmt.thenBranch, stmt.elseBranch)
}

func (printer *AstPrinter) visitPrintStmt(stmt *Print) (interface{}, error) {
	return printer.parenthesize("print", stmt.expression)
}

func (printer *AstPrinter) visitReturnStmt(stmt *Return) (interface{}, error) {
	if stmt.value == nil {
		return "(return)", nil
	}
	return printer.parenthesize("return", stmt.value)
}

func (printer *AstPrinter) visitVarStmt(stmt *Var) (interface{}, error) {
	if stmt.initializer == nil {
		return printer.parenthesize("var", stmt.name)
	}
	return printer.parenthesize("var", stmt.name, "=", stmt.initializer)
}

func (printer *AstPrinter) visitWhileStmt(stmt *While) (interface{}, error) {
	return printer.parenthesize("while", stmt.condition, stmt.body)
}

func (printer *AstPrinter) visitAssignExpr(expr *Assign) (interface{}, error) {
	return printer.parenthesize("=", expr.name, expr.value)
}

func (printer *AstPrinter) visitBinaryExpr(expr *Binary) (interface{}, error) {
	return printer.parenthesize(expr.operator.Lexeme, expr.left, expr.right)
}

func (printer *AstPrinter) visitCallExpr(expr *Call) (interface{}, error) {
	parts := make([]interface{}, 0, len(expr.arguments)+1)
	parts = append(parts, expr.callee)
	for _, argument := range expr.arguments {
		parts = append(parts, argument)
	}
	return printer.parenthesize("call", parts...)
}

func (printer *AstPrinter) visitGetExpr(expr *Get) (interface{}, error) {
	return printer.parenthesize(".", expr.object, expr.name)
}

func (printer *AstPrinter) visitGroupingExpr(expr *Grouping) (interface{}, error) {
	return printer.parenthesize("group", expr.expression)
}

func (printer *AstPrinter) visitLiteralExpr(expr *Literal) (interface{}, error) {
	if s, ok := expr.value.(string); ok {
		return `"` + s + `"`, nil
	}
	return stringify(expr.value), nil
}

func (printer *AstPrinter) visitLogicalExpr(expr *Logical) (interface{}, error) {
	return printer.parenthesize(expr.operator.Lexeme, expr.left, expr.right)
}

func (printer *AstPrinter) visitSetExpr(expr *Set) (interface{}, error) {
	return printer.parenthesize("=", expr.object, expr.name, expr.value)
}

func (printer *AstPrinter) visitSuperExpr(expr *Super) (interface{}, error) {
	return printer.parenthesize("super", expr.method)
}

func (printer *AstPrinter) visitTernaryExpr(expr *Ternary) (interface{}, error) {
	return printer.parenthesize("?:", expr.condition, expr.ifTrue, expr.ifFalse)
}

func (printer *AstPrinter) visitThisExpr(expr *This) (interface{}, error) {
	return "this", nil
}

func (printer *AstPrinter) visitUnaryExpr(expr *Unary) (interface{}, error) {
	return printer.parenthesize(expr.operator.Lexeme, expr.right)
}

func (printer *AstPrinter) visitVariableExpr(expr *Variable) (interface{}, error) {
	return expr.name.Lexeme, nil
}
