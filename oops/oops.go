// Package oops wraps errors with a stack trace captured where the error
// was first seen. The trace survives wrapping and is picked up both by
// %+v formatting and by zerolog's stack marshaler.
package oops

import (
	"fmt"

	"github.com/pkg/errors"
)

// StackTracer is satisfied by everything github.com/pkg/errors constructs
// and by everything this package returns.
type StackTracer interface {
	Error() string
	StackTrace() errors.StackTrace
}

type Error struct {
	Inner StackTracer
}

func (err *Error) Error() string {
	return err.Inner.Error()
}

func (err *Error) Unwrap() error {
	return err.Inner
}

func (err *Error) Is(target error) bool {
	return errors.Is(err.Inner, target)
}

func (err *Error) As(target any) bool {
	return errors.As(err.Inner, target)
}

func (err *Error) StackTrace() errors.StackTrace {
	return err.Inner.StackTrace()
}

func (err *Error) Format(s fmt.State, verb rune) {
	if formatter, ok := err.Inner.(fmt.Formatter); ok {
		formatter.Format(s, verb)
		return
	}
	fmt.Fprintf(s, fmt.FormatString(s, verb), err.Inner)
}

// Wrap attaches a stack trace unless err already carries one.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if sterr, ok := err.(StackTracer); ok {
		return &Error{Inner: sterr}
	}
	return &Error{Inner: errors.WithStack(err).(StackTracer)}
}

// Wrapf annotates err with a message and a stack trace from this call site.
func Wrapf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Inner: errors.Wrapf(err, format, a...).(StackTracer)}
}

func New(message string) error {
	return &Error{Inner: errors.New(message).(StackTracer)}
}

func Newf(format string, a ...any) error {
	return &Error{Inner: errors.Errorf(format, a...).(StackTracer)}
}
