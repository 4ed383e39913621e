package lox

import (
	"io"
	"os"
	"time"
)

type options struct {
	interactive bool
	out         io.Writer
	reporter    Reporter
	now         func() time.Time
}

// Option configures a Lox pipeline or an Interpreter.
type Option func(*options)

// WithInteractive makes expression statements print their value, as a REPL
// does.
func WithInteractive(interactive bool) Option {
	return func(o *options) { o.interactive = interactive }
}

// WithOutput sets where print writes. Defaults to os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(o *options) { o.out = out }
}

// WithReporter sets the diagnostics sink. Defaults to a ConsoleReporter on
// os.Stderr.
func WithReporter(reporter Reporter) Option {
	return func(o *options) { o.reporter = reporter }
}

// WithClock replaces the time source behind the native clock().
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{out: os.Stdout, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.reporter == nil {
		o.reporter = NewConsoleReporter(os.Stderr, false)
	}
	return o
}
