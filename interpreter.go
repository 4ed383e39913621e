package lox

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Interpreter evaluates resolved statements. It keeps its globals between
// calls to Interpret, which is what lets a REPL build a program up line by
// line.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[Expr]int
	out         io.Writer
	reporter    Reporter
	interactive bool
}

func NewInterpreter(opts ...Option) *Interpreter {
	o := buildOptions(opts)

	globals := NewEnvironment(nil)
	globals.Define("clock", NewClock(o.now))

	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      map[Expr]int{},
		out:         o.out,
		reporter:    o.reporter,
		interactive: o.interactive,
	}
}

// Interpret executes statements in order and stops at the first runtime
// error, which is reported and returned. The interpreter stays usable.
func (in *Interpreter) Interpret(statements []Stmt) error {
	for _, statement := range statements {
		if _, err := in.execute(statement); err != nil {
			var re *RuntimeError
			if errors.As(err, &re) {
				in.reporter.RuntimeError(re.Message, re.Token.Line)
			}
			return err
		}
	}
	return nil
}

// resolve records the scope distance of a local reference. Called by the
// Resolver.
func (in *Interpreter) resolve(expr Expr, depth int) {
	in.locals[expr] = depth
}

func (in *Interpreter) execute(stmt Stmt) (flow, error) {
	result, err := stmt.accept(in)
	if err != nil {
		return completed, err
	}
	return result.(flow), nil
}

func (in *Interpreter) evaluate(expr Expr) (interface{}, error) {
	return expr.accept(in)
}

// executeBlock runs statements with env as the current scope and puts the
// previous scope back however the block is left.
func (in *Interpreter) executeBlock(statements []Stmt, env *Environment) (flow, error) {
	previous := in.environment
	defer func() {
		in.environment = previous
	}()
	in.environment = env
	for _, statement := range statements {
		result, err := in.execute(statement)
		if err != nil || result.returned {
			return result, err
		}
	}
	return completed, nil
}

func (in *Interpreter) visitBlockStmt(stmt *Block) (interface{}, error) {
	return in.executeBlock(stmt.statements, NewEnvironment(in.environment))
}

// visitClassStmt binds the class name before building the class so that
// method bodies can refer to it.
func (in *Interpreter) visitClassStmt(stmt *Class) (interface{}, error) {
	var superclass *LoxClass
	if stmt.superclass != nil {
		value, err := in.evaluate(stmt.superclass)
		if err != nil {
			return nil, err
		}
		class, ok := value.(*LoxClass)
		if !ok {
			return nil, NewRuntimeError(stmt.superclass.name, InvalidSuperclass, "Superclass must be a class.")
		}
		superclass = class
	}

	in.environment.Define(stmt.name.Lexeme, nil)

	env := in.environment
	if superclass != nil {
		env = NewEnvironment(env)
		env.Define("super", superclass)
	}

	methods := make(map[string]*LoxFunction, len(stmt.methods))
	for _, method := range stmt.methods {
		methods[method.name.Lexeme] = NewLoxFunction(method, env, method.name.Lexeme == "init")
	}
	staticMethods := make(map[string]*LoxFunction, len(stmt.staticMethods))
	for _, method := range stmt.staticMethods {
		staticMethods[method.name.Lexeme] = NewLoxFunction(method, env, false)
	}

	class := NewLoxClass(stmt.name.Lexeme, superclass, staticMethods, methods)
	if err := in.environment.Assign(stmt.name, class); err != nil {
		return nil, err
	}
	return completed, nil
}

func (in *Interpreter) visitExpressionStmt(stmt *Expression) (interface{}, error) {
	value, err := in.evaluate(stmt.expression)
	if err != nil {
		return nil, err
	}
	if in.interactive {
		in.println(value)
	}
	return completed, nil
}

func (in *Interpreter) visitFunctionStmt(stmt *Function) (interface{}, error) {
	in.environment.Define(stmt.name.Lexeme, NewLoxFunction(stmt, in.environment, false))
	return completed, nil
}

func (in *Interpreter) visitIfStmt(stmt *If) (interface{}, error) {
	condition, err := in.evaluate(stmt.condition)
	if err != nil {
		return nil, err
	}
	if isTruthy(condition) {
		return in.execute(stmt.thenBranch)
	}
	if stmt.elseBranch != nil {
		return in.execute(stmt.elseBranch)
	}
	return completed, nil
}

func (in *Interpreter) visitPrintStmt(stmt *Print) (interface{}, error) {
	value, err := in.evaluate(stmt.expression)
	if err != nil {
		return nil, err
	}
	in.println(value)
	return completed, nil
}

func (in *Interpreter) visitReturnStmt(stmt *Return) (interface{}, error) {
	var value interface{}
	if stmt.value != nil {
		var err error
		if value, err = in.evaluate(stmt.value); err != nil {
			return nil, err
		}
	}
	return returning(value), nil
}

// visitVarStmt gives a new global the value nil while its own initializer
// runs, so `var a = a;` at top level yields nil. The binding is taken back
// if the initializer fails.
func (in *Interpreter) visitVarStmt(stmt *Var) (interface{}, error) {
	provisional := in.environment == in.globals && !in.globals.Has(stmt.name.Lexeme)
	if provisional {
		in.globals.Define(stmt.name.Lexeme, nil)
	}
	var value interface{}
	if stmt.initializer != nil {
		var err error
		if value, err = in.evaluate(stmt.initializer); err != nil {
			if provisional {
				in.globals.Undefine(stmt.name.Lexeme)
			}
			return nil, err
		}
	}
	in.environment.Define(stmt.name.Lexeme, value)
	return completed, nil
}

func (in *Interpreter) visitWhileStmt(stmt *While) (interface{}, error) {
	for {
		condition, err := in.evaluate(stmt.condition)
		if err != nil {
			return nil, err
		}
		if !isTruthy(condition) {
			return completed, nil
		}
		result, err := in.execute(stmt.body)
		if err != nil || result.returned {
			return result, err
		}
	}
}

func (in *Interpreter) visitAssignExpr(expr *Assign) (interface{}, error) {
	value, err := in.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[expr]; ok {
		in.environment.AssignAt(distance, expr.name, value)
	} else if err := in.globals.Assign(expr.name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) visitBinaryExpr(expr *Binary) (interface{}, error) {
	left, err := in.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(expr.right)
	if err != nil {
		return nil, err
	}

	switch expr.operator.Type {
	case BANG_EQUAL:
		return !isEqual(left, right), nil
	case EQUAL_EQUAL:
		return isEqual(left, right), nil
	case PLUS:
		if l, ok := left.(float64); ok {
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, NewRuntimeError(expr.operator, TypeError, "Operands must be two numbers or two strings.")
	}

	l, r, err := numberOperands(expr.operator, left, right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.Type {
	case GREATER:
		return l > r, nil
	case GREATER_EQUAL:
		return l >= r, nil
	case LESS:
		return l < r, nil
	case LESS_EQUAL:
		return l <= r, nil
	case MINUS:
		return l - r, nil
	case STAR:
		return l * r, nil
	case SLASH:
		if r == 0 {
			return nil, NewRuntimeError(expr.operator, DivisionByZero, "Division by zero.")
		}
		return l / r, nil
	}
	panic("lox: unexpected binary operator " + expr.operator.Type.String())
}

func (in *Interpreter) visitCallExpr(expr *Call) (interface{}, error) {
	callee, err := in.evaluate(expr.callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, 0, len(expr.arguments))
	for _, argument := range expr.arguments {
		value, err := in.evaluate(argument)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, value)
	}

	function, ok := callee.(LoxCallable)
	if !ok {
		return nil, NewRuntimeError(expr.paren, NotCallable, "Can only call functions and classes.")
	}
	if len(arguments) != function.Arity() {
		return nil, NewRuntimeError(expr.paren, ArityMismatch, "Expected "+strconv.Itoa(function.Arity())+
			" arguments but got "+strconv.Itoa(len(arguments))+".")
	}
	return function.Call(in, arguments)
}

func (in *Interpreter) visitGetExpr(expr *Get) (interface{}, error) {
	object, err := in.evaluate(expr.object)
	if err != nil {
		return nil, err
	}
	switch v := object.(type) {
	case *LoxInstance:
		return v.Get(expr.name)
	case *LoxClass:
		return v.Get(expr.name)
	}
	return nil, NewRuntimeError(expr.name, NotInstance, "Only instances have properties.")
}

func (in *Interpreter) visitGroupingExpr(expr *Grouping) (interface{}, error) {
	return in.evaluate(expr.expression)
}

func (in *Interpreter) visitLiteralExpr(expr *Literal) (interface{}, error) {
	return expr.value, nil
}

func (in *Interpreter) visitLogicalExpr(expr *Logical) (interface{}, error) {
	left, err := in.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	if expr.operator.Type == OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return in.evaluate(expr.right)
}

func (in *Interpreter) visitSetExpr(expr *Set) (interface{}, error) {
	object, err := in.evaluate(expr.object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*LoxInstance)
	if !ok {
		return nil, NewRuntimeError(expr.name, NotInstance, "Only instances have fields.")
	}
	value, err := in.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	instance.Set(expr.name, value)
	return value, nil
}

// visitSuperExpr finds the method on the superclass and binds it to the
// current receiver. `this` always lives one scope inside `super`.
func (in *Interpreter) visitSuperExpr(expr *Super) (interface{}, error) {
	distance := in.locals[expr]
	superclass := in.environment.GetAt(distance, "super").(*LoxClass)
	receiver := in.environment.GetAt(distance-1, "this")

	var method *LoxFunction
	if _, static := receiver.(*LoxClass); static {
		method = superclass.findStaticMethod(expr.method.Lexeme)
	} else {
		method = superclass.findMethod(expr.method.Lexeme)
	}
	if method == nil {
		return nil, undefinedProperty(expr.method)
	}
	return method.Bind(receiver), nil
}

func (in *Interpreter) visitTernaryExpr(expr *Ternary) (interface{}, error) {
	condition, err := in.evaluate(expr.condition)
	if err != nil {
		return nil, err
	}
	if isTruthy(condition) {
		return in.evaluate(expr.ifTrue)
	}
	return in.evaluate(expr.ifFalse)
}

func (in *Interpreter) visitThisExpr(expr *This) (interface{}, error) {
	return in.lookUpVariable(expr.keyword, expr)
}

func (in *Interpreter) visitUnaryExpr(expr *Unary) (interface{}, error) {
	right, err := in.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.Type {
	case MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, NewRuntimeError(expr.operator, TypeError, "Operand must be a number.")
		}
		return -n, nil
	case BANG:
		return !isTruthy(right), nil
	}
	panic("lox: unexpected unary operator " + expr.operator.Type.String())
}

func (in *Interpreter) visitVariableExpr(expr *Variable) (interface{}, error) {
	return in.lookUpVariable(expr.name, expr)
}

func (in *Interpreter) lookUpVariable(name *Token, expr Expr) (interface{}, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) println(value interface{}) {
	_, _ = fmt.Fprintln(in.out, stringify(value))
}

// isTruthy: nil and false are falsy, everything else is truthy.
func isTruthy(obj interface{}) bool {
	if obj == nil {
		return false
	}
	if v, ok := obj.(bool); ok {
		return v
	}
	return true
}

func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		return false
	}
	return a == b
}

func numberOperands(operator *Token, left, right interface{}) (float64, float64, error) {
	l, ok1 := left.(float64)
	r, ok2 := right.(float64)
	if ok1 && ok2 {
		return l, r, nil
	}
	return 0, 0, NewRuntimeError(operator, TypeError, "Operands must be numbers.")
}

func stringify(obj interface{}) string {
	switch v := obj.(type) {
	case nil:
		return "nil"
	case float64:
		return FloatVal(v)
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprintf("%v", obj)
}
