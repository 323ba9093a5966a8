package errors

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Recovery runs fn and converts a panic into an error carrying the panic
// value and the stack at the point of the panic. A normal error return from
// fn passes through unchanged. It exists to guard calls into injected code
// (objective functions) that the caller does not control.
func Recovery(op, component string, fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &Error{
				Err:       fmt.Errorf("panic: %v", rec),
				Message:   "recovered from panic",
				Operation: op,
				Component: component,
				Stack:     strings.Split(strings.TrimSpace(string(debug.Stack())), "\n"),
			}
		}
	}()

	return fn()
}
