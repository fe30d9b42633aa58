package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

// KindInvalidInput is the only kind of failure a calculation can report.
const KindInvalidInput ErrorKind = "invalid_input"

// Error is returned by decoders and calculators. Callers recover it with
// errors.As and show Message to the client verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func InvalidInput(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err, or anything it wraps, is an
// InvalidInput error.
func IsInvalidInput(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvalidInput
}
