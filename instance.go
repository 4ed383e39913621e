package lox

func NewLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: map[string]interface{}{}}
}

// LoxInstance holds per-object fields. Fields come into existence on first
// assignment.
type LoxInstance struct {
	class  *LoxClass
	fields map[string]interface{}
}

// Get prefers a field over a method of the same name.
func (i *LoxInstance) Get(name *Token) (interface{}, error) {
	if value, ok := i.fields[name.Lexeme]; ok {
		return value, nil
	}
	if method := i.class.findMethod(name.Lexeme); method != nil {
		return method.Bind(i), nil
	}
	return nil, undefinedProperty(name)
}

func (i *LoxInstance) Set(name *Token, value interface{}) {
	i.fields[name.Lexeme] = value
}

func (i *LoxInstance) String() string {
	return i.class.name + " instance"
}

func undefinedProperty(name *Token) *RuntimeError {
	return NewRuntimeError(name, UndefinedProperty, "Undefined property '"+name.Lexeme+"'.")
}
