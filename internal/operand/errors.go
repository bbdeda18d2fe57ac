package operand

import "fmt"

// OverflowError reports a value that cannot be represented in a target
// kind. It aborts the operation that required the conversion.
type OverflowError struct {
	Msg string
}

func (e *OverflowError) Error() string { return e.Msg }

// Overflowf builds an OverflowError.
func Overflowf(format string, args ...any) *OverflowError {
	return &OverflowError{Msg: fmt.Sprintf(format, args...)}
}
