package lox

// flow is the outcome of executing a statement. A return statement produces
// returned == true, and every enclosing statement hands it up unchanged until
// a function call consumes it.
type flow struct {
	returned bool
	value    interface{}
}

var completed = flow{}

func returning(value interface{}) flow {
	return flow{returned: true, value: value}
}
