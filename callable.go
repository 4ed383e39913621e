package lox

// LoxCallable is any value a call expression can invoke: user functions,
// classes (as constructors) and natives.
type LoxCallable interface {
	Arity() int
	Call(interpreter *Interpreter, arguments []interface{}) (interface{}, error)
}
