package diagram

import "fmt"

// FieldError reports a rejected field mutation. The entity keeps its
// previous value; the caller decides whether to log the rejection.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Reason)
}

func rejectf(field, format string, args ...any) error {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
