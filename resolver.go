package lox

type FunctionType int

type ClassType int

const (
	FT_NONE FunctionType = iota
	FT_FUNCTION
	FT_INITIALIZER
	FT_METHOD
)

const (
	CT_NONE ClassType = iota
	CT_CLASS
	CT_SUBCLASS
)

// scope maps a name to whether its declaration has finished (its
// initializer has been resolved).
type scope map[string]bool

// Resolver walks the tree once before execution and tells the interpreter,
// for every local variable reference, how many scopes out its binding
// lives. References it does not record are globals.
type Resolver struct {
	interpreter     *Interpreter
	reporter        Reporter
	scopes          *Stack[scope]
	globals         map[string]bool
	currentFunction FunctionType
	currentClass    ClassType
}

func NewResolver(interpreter *Interpreter, reporter Reporter) *Resolver {
	return &Resolver{
		interpreter:     interpreter,
		reporter:        reporter,
		scopes:          NewStack[scope](),
		globals:         map[string]bool{},
		currentFunction: FT_NONE,
		currentClass:    CT_NONE,
	}
}

// Resolve resolves a whole program. Errors are reported, not returned.
func (r *Resolver) Resolve(statements []Stmt) {
	r.resolve(statements)
}

func (r *Resolver) resolve(statements []Stmt) {
	for _, statement := range statements {
		r.resolveStmt(statement)
	}
}

func (r *Resolver) resolveStmt(stmt Stmt) {
	_, _ = stmt.accept(r)
}

func (r *Resolver) resolveExpr(expr Expr) {
	_, _ = expr.accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes.Push(scope{})
}

func (r *Resolver) endScope() {
	_, _ = r.scopes.Pop()
}

func (r *Resolver) declare(name *Token) {
	if r.scopes.IsEmpty() {
		r.globals[name.Lexeme] = true
		return
	}
	current := r.scopes.Top()
	if _, ok := current[name.Lexeme]; ok {
		errorToken(r.reporter, name, "Already a variable with this name in this scope.")
	}
	current[name.Lexeme] = false
}

func (r *Resolver) define(name *Token) {
	if r.scopes.IsEmpty() {
		return
	}
	r.scopes.Top()[name.Lexeme] = true
}

// resolveLocal records the distance to the innermost scope declaring name.
// A read of a declaration still in progress skips it so that its initializer
// sees the next binding out; with no binding out at all the read is an
// error. An assignment always targets the innermost declaration.
func (r *Resolver) resolveLocal(expr Expr, name *Token) {
	_, write := expr.(*Assign)
	pending := false
	for i := r.scopes.Size() - 1; i >= 0; i-- {
		frame, _ := r.scopes.Get(i)
		defined, ok := frame[name.Lexeme]
		if !ok {
			continue
		}
		if !defined && !write {
			pending = true
			continue
		}
		r.interpreter.resolve(expr, r.scopes.Size()-1-i)
		return
	}
	if pending && !r.isGlobal(name.Lexeme) {
		errorToken(r.reporter, name, "Can't read local variable in its own initializer.")
	}
}

// isGlobal reports whether name is a global declared earlier in this
// program or in an earlier run.
func (r *Resolver) isGlobal(name string) bool {
	return r.globals[name] || r.interpreter.globals.Has(name)
}

func (r *Resolver) resolveFunction(function *Function, ft FunctionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = ft

	r.beginScope()
	for _, param := range function.params {
		r.declare(param)
		r.define(param)
	}
	r.resolve(function.body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) visitBlockStmt(stmt *Block) (interface{}, error) {
	r.beginScope()
	r.resolve(stmt.statements)
	r.endScope()
	return nil, nil
}

func (r *Resolver) visitClassStmt(stmt *Class) (interface{}, error) {
	enclosingClass := r.currentClass
	r.currentClass = CT_CLASS

	r.declare(stmt.name)
	r.define(stmt.name)

	if stmt.superclass != nil {
		if stmt.name.Lexeme == stmt.superclass.name.Lexeme {
			errorToken(r.reporter, stmt.superclass.name, "A class can't inherit from itself.")
		}
		r.currentClass = CT_SUBCLASS
		r.resolveExpr(stmt.superclass)

		r.beginScope()
		r.scopes.Top()["super"] = true
	}

	r.beginScope()
	r.scopes.Top()["this"] = true
	for _, method := range stmt.methods {
		declaration := FT_METHOD
		if method.name.Lexeme == "init" {
			declaration = FT_INITIALIZER
		}
		r.resolveFunction(method, declaration)
	}
	for _, method := range stmt.staticMethods {
		r.resolveFunction(method, FT_METHOD)
	}
	r.endScope()

	if stmt.superclass != nil {
		r.endScope()
	}
	r.currentClass = enclosingClass
	return nil, nil
}

func (r *Resolver) visitExpressionStmt(stmt *Expression) (interface{}, error) {
	r.resolveExpr(stmt.expression)
	return nil, nil
}

func (r *Resolver) visitFunctionStmt(stmt *Function) (interface{}, error) {
	r.declare(stmt.name)
	r.define(stmt.name)
	r.resolveFunction(stmt, FT_FUNCTION)
	return nil, nil
}

func (r *Resolver) visitIfStmt(stmt *If) (interface{}, error) {
	r.resolveExpr(stmt.condition)
	r.resolveStmt(stmt.thenBranch)
	if stmt.elseBranch != nil {
		r.resolveStmt(stmt.elseBranch)
	}
	return nil, nil
}

func (r *Resolver) visitPrintStmt(stmt *Print) (interface{}, error) {
	r.resolveExpr(stmt.expression)
	return nil, nil
}

func (r *Resolver) visitReturnStmt(stmt *Return) (interface{}, error) {
	if r.currentFunction == FT_NONE {
		errorToken(r.reporter, stmt.keyword, "Can't return from top-level code.")
	}
	if stmt.value != nil {
		if r.currentFunction == FT_INITIALIZER {
			errorToken(r.reporter, stmt.keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(stmt.value)
	}
	return nil, nil
}

func (r *Resolver) visitVarStmt(stmt *Var) (interface{}, error) {
	r.declare(stmt.name)
	if stmt.initializer != nil {
		r.resolveExpr(stmt.initializer)
	}
	r.define(stmt.name)
	return nil, nil
}

func (r *Resolver) visitWhileStmt(stmt *While) (interface{}, error) {
	r.resolveExpr(stmt.condition)
	r.resolveStmt(stmt.body)
	return nil, nil
}

func (r *Resolver) visitAssignExpr(expr *Assign) (interface{}, error) {
	r.resolveExpr(expr.value)
	r.resolveLocal(expr, expr.name)
	return nil, nil
}

func (r *Resolver) visitBinaryExpr(expr *Binary) (interface{}, error) {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *Resolver) visitCallExpr(expr *Call) (interface{}, error) {
	r.resolveExpr(expr.callee)
	for _, argument := range expr.arguments {
		r.resolveExpr(argument)
	}
	return nil, nil
}

func (r *Resolver) visitGetExpr(expr *Get) (interface{}, error) {
	r.resolveExpr(expr.object)
	return nil, nil
}

func (r *Resolver) visitGroupingExpr(expr *Grouping) (interface{}, error) {
	r.resolveExpr(expr.expression)
	return nil, nil
}

func (r *Resolver) visitLiteralExpr(expr *Literal) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) visitLogicalExpr(expr *Logical) (interface{}, error) {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *Resolver) visitSetExpr(expr *Set) (interface{}, error) {
	r.resolveExpr(expr.value)
	r.resolveExpr(expr.object)
	return nil, nil
}

func (r *Resolver) visitSuperExpr(expr *Super) (interface{}, error) {
	if r.currentClass == CT_NONE {
		errorToken(r.reporter, expr.keyword, "Can't use 'super' outside of a class.")
	} else if r.currentClass != CT_SUBCLASS {
		errorToken(r.reporter, expr.keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(expr, expr.keyword)
	return nil, nil
}

func (r *Resolver) visitTernaryExpr(expr *Ternary) (interface{}, error) {
	r.resolveExpr(expr.condition)
	r.resolveExpr(expr.ifTrue)
	r.resolveExpr(expr.ifFalse)
	return nil, nil
}

func (r *Resolver) visitThisExpr(expr *This) (interface{}, error) {
	if r.currentClass == CT_NONE {
		errorToken(r.reporter, expr.keyword, "Can't use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocal(expr, expr.keyword)
	return nil, nil
}

func (r *Resolver) visitUnaryExpr(expr *Unary) (interface{}, error) {
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *Resolver) visitVariableExpr(expr *Variable) (interface{}, error) {
	r.resolveLocal(expr, expr.name)
	return nil, nil
}
