// Command generate_ast writes the expression and statement node
// definitions (expr.go, stmt.go) of package lox.
//
//	go run ./tool <output directory>
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: generate_ast <output directory>")
		os.Exit(64)
	}
	outputDir := os.Args[1]
	for _, err := range []error{
		defineAst(outputDir, "Expr", []string{
			"Assign   : name *Token, value Expr",
			"Binary   : left Expr, operator *Token, right Expr",
			"Call     : callee Expr, paren *Token, arguments []Expr",
			"Get      : object Expr, name *Token",
			"Grouping : expression Expr",
			"Literal  : value interface{}",
			"Logical  : left Expr, operator *Token, right Expr",
			"Set      : object Expr, name *Token, value Expr",
			"Super    : keyword *Token, method *Token",
			"Ternary  : operator *Token, condition Expr, ifTrue Expr, ifFalse Expr",
			"This     : keyword *Token",
			"Unary    : operator *Token, right Expr",
			"Variable : name *Token",
		}),
		defineAst(outputDir, "Stmt", []string{
			"Block      : statements []Stmt",
			"Class      : name *Token, superclass *Variable, staticMethods []*Function, methods []*Function",
			"Expression : expression Expr",
			"Function   : name *Token, params []*Token, body []Stmt",
			"If         : condition Expr, thenBranch Stmt, elseBranch Stmt",
			"Print      : expression Expr",
			"Return     : keyword *Token, value Expr",
			"Var        : name *Token, initializer Expr",
			"While      : condition Expr, body Stmt",
		}),
	} {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(65)
		}
	}
}

func defineAst(outputDir, baseName string, types []string) error {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by tool/generate_ast.go. DO NOT EDIT.\n\n")
	buf.WriteString("package lox\n\n")
	buf.WriteString("type " + baseName + " interface {\n")
	buf.WriteString("\taccept(visitor " + baseName + "Visitor) (interface{}, error)\n")
	buf.WriteString("}\n\n")

	defineVisitor(&buf, baseName, types)

	for _, ty := range types {
		className, fields := splitType(ty)
		defineType(&buf, className, fields)

		buf.WriteString("func (n *" + className +
			") accept(visitor " + baseName + "Visitor) (interface{}, error) {\n")
		buf.WriteString("\treturn visitor.visit" + className + baseName + "(n)\n")
		buf.WriteString("}\n\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", baseName, err)
	}
	path := filepath.Join(outputDir, strings.ToLower(baseName)+".go")
	return os.WriteFile(path, src, 0o644)
}

func splitType(ty string) (className, fields string) {
	parts := strings.SplitN(ty, ":", 2)
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

func defineType(buf *bytes.Buffer, className, fieldList string) {
	fields := strings.Split(fieldList, ",")

	// constructor
	buf.WriteString("func New" + className + "(" + fieldList + ") *" + className + " {\n")
	buf.WriteString("\treturn &" + className + "{\n")
	for _, field := range fields {
		name := strings.Fields(field)[0]
		buf.WriteString("\t\t" + name + ": " + name + ",\n")
	}
	buf.WriteString("\t}\n")
	buf.WriteString("}\n\n")

	buf.WriteString("type " + className + " struct {\n")
	for _, field := range fields {
		buf.WriteString("\t" + strings.TrimSpace(field) + "\n")
	}
	buf.WriteString("}\n\n")
}

func defineVisitor(buf *bytes.Buffer, baseName string, types []string) {
	buf.WriteString("type " + baseName + "Visitor interface {\n")
	for _, ty := range types {
		typeName, _ := splitType(ty)
		buf.WriteString("\tvisit" + typeName + baseName + "(" +
			strings.ToLower(baseName) + " *" + typeName + ") (interface{}, error)\n")
	}
	buf.WriteString("}\n\n")
}
