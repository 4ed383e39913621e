package lox

func NewLoxClass(name string, superclass *LoxClass, staticMethods, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{name: name, superclass: superclass, staticMethods: staticMethods, methods: methods}
}

// LoxClass is both the constructor for its instances and the receiver of
// its static methods.
type LoxClass struct {
	name          string
	superclass    *LoxClass
	staticMethods map[string]*LoxFunction
	methods       map[string]*LoxFunction
}

// findMethod looks an instance method up along the superclass chain.
func (c *LoxClass) findMethod(name string) *LoxFunction {
	for class := c; class != nil; class = class.superclass {
		if method, ok := class.methods[name]; ok {
			return method
		}
	}
	return nil
}

// findStaticMethod looks a static method up along the superclass chain. It
// never returns instance methods.
func (c *LoxClass) findStaticMethod(name string) *LoxFunction {
	for class := c; class != nil; class = class.superclass {
		if method, ok := class.staticMethods[name]; ok {
			return method
		}
	}
	return nil
}

// Get reads a static member, bound to the class.
func (c *LoxClass) Get(name *Token) (interface{}, error) {
	if method := c.findStaticMethod(name.Lexeme); method != nil {
		return method.Bind(c), nil
	}
	return nil, undefinedProperty(name)
}

// Call constructs an instance and runs init on it, if there is one. The
// result is always the new instance.
func (c *LoxClass) Call(interpreter *Interpreter, arguments []interface{}) (interface{}, error) {
	instance := NewLoxInstance(c)
	if initializer := c.findMethod("init"); initializer != nil {
		if _, err := initializer.Bind(instance).Call(interpreter, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *LoxClass) Arity() int {
	if initializer := c.findMethod("init"); initializer != nil {
		return initializer.Arity()
	}
	return 0
}

func (c *LoxClass) String() string {
	return c.name
}
