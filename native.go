package lox

import (
	"time"
)

// Clock is the native clock(): seconds since the Unix epoch as a number.
type Clock struct {
	now func() time.Time
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

func (c *Clock) Arity() int {
	return 0
}

func (c *Clock) Call(interpreter *Interpreter, arguments []interface{}) (interface{}, error) {
	return float64(c.now().UnixNano()) / float64(time.Second), nil
}

func (c *Clock) String() string {
	return "<native fn>"
}
