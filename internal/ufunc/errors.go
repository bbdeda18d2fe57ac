package ufunc

import "fmt"

// FloatingPointError aborts an operation when errstate(over=raise) is
// active and the arithmetic itself overflows.
type FloatingPointError struct {
	Msg string
}

func (e *FloatingPointError) Error() string { return e.Msg }

func floatingPointf(format string, args ...any) *FloatingPointError {
	return &FloatingPointError{Msg: fmt.Sprintf(format, args...)}
}
