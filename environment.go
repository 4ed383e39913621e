package lox

// Environment is one scope of bindings. Child scopes point at their enclosing
// scope; closures keep a pointer to the scope they were created in, so every
// holder of a scope observes the same bindings.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]interface{})}
}

// Define binds name in this scope, replacing any earlier binding.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Undefine removes name from this scope only.
func (e *Environment) Undefine(name string) {
	delete(e.values, name)
}

// Has reports whether name is bound in this scope, ignoring enclosing ones.
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Get looks name up, walking outward through enclosing scopes.
func (e *Environment) Get(name *Token) (interface{}, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, undefinedVariable(name)
}

// Assign rebinds an existing name, walking outward through enclosing scopes.
func (e *Environment) Assign(name *Token, value interface{}) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}
	return undefinedVariable(name)
}

// GetAt reads name from the scope exactly distance links out.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).values[name]
}

// AssignAt writes name into the scope exactly distance links out.
func (e *Environment) AssignAt(distance int, name *Token, value interface{}) {
	e.ancestor(distance).values[name.Lexeme] = value
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

func undefinedVariable(name *Token) *RuntimeError {
	return NewRuntimeError(name, UndefinedVariable, "Undefined variable '"+name.Lexeme+"'.")
}
