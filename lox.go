// Package lox is a tree-walking interpreter for the Lox scripting language.
//
// Source text goes through four stages: the Scanner produces tokens, the
// Parser builds statements, the Resolver binds every local variable
// reference to a scope distance, and the Interpreter executes the result.
// Lox ties the stages together and keeps one Interpreter alive across runs.
package lox

//go:generate go run ./tool .

// Status is the outcome of one run.
type Status int

const (
	StatusOK Status = iota
	StatusStaticError
	StatusRuntimeError
)

// ExitCode maps a status to the sysexits-style code used by the driver.
func (s Status) ExitCode() int {
	switch s {
	case StatusStaticError:
		return 65
	case StatusRuntimeError:
		return 70
	}
	return 0
}

func (s Status) String() string {
	switch s {
	case StatusStaticError:
		return "static error"
	case StatusRuntimeError:
		return "runtime error"
	}
	return "ok"
}

type Lox struct {
	interpreter *Interpreter
	reporter    Reporter
}

func New(opts ...Option) *Lox {
	o := buildOptions(opts)
	return &Lox{
		interpreter: NewInterpreter(opts...),
		reporter:    o.reporter,
	}
}

// Run scans, parses, resolves and interprets source. Any static error stops
// the run before execution starts.
func (l *Lox) Run(source string) Status {
	diag := &tally{Reporter: l.reporter}

	statements := l.parse(source, diag)
	if diag.static > 0 {
		return StatusStaticError
	}

	NewResolver(l.interpreter, diag).Resolve(statements)
	if diag.static > 0 {
		return StatusStaticError
	}

	if err := l.interpreter.Interpret(statements); err != nil {
		return StatusRuntimeError
	}
	return StatusOK
}

// Parse scans and parses source without resolving or running it.
func (l *Lox) Parse(source string) ([]Stmt, error) {
	diag := &tally{Reporter: l.reporter}
	statements := l.parse(source, diag)
	if diag.static > 0 {
		return nil, ErrStaticErrors
	}
	return statements, nil
}

func (l *Lox) parse(source string, diag *tally) []Stmt {
	tokens := NewScanner(source, diag).ScanTokens()
	return NewParser(tokens, diag).Parse()
}

// Incomplete reports whether source stops inside a string, a block comment,
// or an unclosed parenthesis or brace. A REPL uses it to decide whether to
// keep reading lines before running anything.
func Incomplete(source string) bool {
	p := &probe{}
	tokens := NewScanner(source, p).ScanTokens()
	if p.unterminated {
		return true
	}
	depth := 0
	for _, token := range tokens {
		switch token.Type {
		case LEFT_PAREN, LEFT_BRACE:
			depth++
		case RIGHT_PAREN, RIGHT_BRACE:
			depth--
		}
	}
	return depth > 0
}

// probe swallows diagnostics and notes whether the scanner ran off the end.
type probe struct {
	unterminated bool
}

func (p *probe) Error(line int, where, message string) {
	if message == msgUnterminatedString || message == msgUnterminatedComment {
		p.unterminated = true
	}
}

func (p *probe) RuntimeError(message string, line int) {}
