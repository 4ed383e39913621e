package lox

func NewLoxFunction(decl *Function, closure *Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{declaration: decl, closure: closure, isInitializer: isInitializer}
}

// LoxFunction is a user-defined function or method together with the scope it
// was declared in.
type LoxFunction struct {
	declaration   *Function
	closure       *Environment
	isInitializer bool
}

// Bind returns a copy of the function whose scope has `this` set to
// receiver: an instance for methods, the class itself for static methods.
func (f *LoxFunction) Bind(receiver interface{}) *LoxFunction {
	environment := NewEnvironment(f.closure)
	environment.Define("this", receiver)
	return NewLoxFunction(f.declaration, environment, f.isInitializer)
}

func (f *LoxFunction) Arity() int {
	return len(f.declaration.params)
}

// Call runs the body in a fresh scope whose parent is the closure, not the
// caller's scope. Initializers always yield the bound instance.
func (f *LoxFunction) Call(interpreter *Interpreter, arguments []interface{}) (interface{}, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.params {
		env.Define(param.Lexeme, arguments[i])
	}

	result, err := interpreter.executeBlock(f.declaration.body, env)
	if err != nil {
		return nil, err
	}
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return result.value, nil
}

func (f *LoxFunction) String() string {
	return "<fn " + f.declaration.name.Lexeme + ">"
}
