package lox

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrStaticErrors is returned by Lox.Parse when scanning or parsing reported
// at least one error.
var ErrStaticErrors = errors.New("lox: static errors reported")

// Reporter receives the diagnostics produced by a run. Static errors
// (scanner, parser, resolver) are reported as they are found and do not stop
// the pass; a runtime error is reported once, when it aborts the run.
type Reporter interface {
	Error(line int, where, message string)
	RuntimeError(message string, line int)
}

// ConsoleReporter writes diagnostics in the classic clox/jlox format.
type ConsoleReporter struct {
	out   io.Writer
	color bool
}

// NewConsoleReporter returns a reporter writing to out. With color set,
// messages are wrapped in ANSI red.
func NewConsoleReporter(out io.Writer, color bool) *ConsoleReporter {
	return &ConsoleReporter{out: out, color: color}
}

func (cr *ConsoleReporter) Error(line int, where, message string) {
	cr.write("[line " + strconv.Itoa(line) + "] Error" + where + ": " + message)
}

func (cr *ConsoleReporter) RuntimeError(message string, line int) {
	cr.write(message + "\n[line " + strconv.Itoa(line) + "]")
}

func (cr *ConsoleReporter) write(s string) {
	if cr.color {
		s = "\x1b[31m" + s + "\x1b[0m"
	}
	_, _ = fmt.Fprintln(cr.out, s)
}

// tally wraps a Reporter and remembers what went through it during one run.
type tally struct {
	Reporter
	static  int
	runtime int
}

func (t *tally) Error(line int, where, message string) {
	t.static++
	t.Reporter.Error(line, where, message)
}

func (t *tally) RuntimeError(message string, line int) {
	t.runtime++
	t.Reporter.RuntimeError(message, line)
}

// errorLine reports a static error that has no token to point at.
func errorLine(r Reporter, line int, message string) {
	r.Error(line, "", message)
}

// errorToken reports a static error located at token.
func errorToken(r Reporter, token *Token, message string) {
	if token.Type == EOF {
		r.Error(token.Line, " at end", message)
	} else {
		r.Error(token.Line, " at '"+token.Lexeme+"'", message)
	}
}

// ErrorKind classifies runtime errors.
type ErrorKind int

const (
	TypeError ErrorKind = iota
	DivisionByZero
	UndefinedVariable
	UndefinedProperty
	ArityMismatch
	NotCallable
	NotInstance
	InvalidSuperclass
)

var errorKindNames = [...]string{
	TypeError:         "type error",
	DivisionByZero:    "division by zero",
	UndefinedVariable: "undefined variable",
	UndefinedProperty: "undefined property",
	ArityMismatch:     "arity mismatch",
	NotCallable:       "not callable",
	NotInstance:       "not an instance",
	InvalidSuperclass: "invalid superclass",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// RuntimeError aborts the current run. Token locates the failing operation.
type RuntimeError struct {
	Token   *Token
	Kind    ErrorKind
	Message string
}

func NewRuntimeError(token *Token, kind ErrorKind, message string) *RuntimeError {
	return &RuntimeError{Token: token, Kind: kind, Message: message}
}

func (re *RuntimeError) Error() string {
	return "[line " + strconv.Itoa(re.Token.Line) + "] " + re.Message
}

// parseError unwinds the parser to the enclosing declaration. It has already
// been reported by the time it is raised.
type parseError struct {
	token   *Token
	message string
}

func (pe parseError) Error() string {
	return "parse error at line " + strconv.Itoa(pe.token.Line) + ": " + pe.message
}
