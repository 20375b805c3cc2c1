package stream

// Error is the structured failure payload a producer delivers through
// Observer.Error. It is data routed through the normal handler-dispatch
// path, not a raised fault: the subscription terminates, the process
// does not.
type Error struct {
	Message string // Human-readable failure description
	Code    int    // Optional machine-readable code, zero when unset
	Cause   error  // Optional underlying error
}

// NewError creates an Error with the given message.
func NewError(message string) Error {
	return Error{Message: message}
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e Error) Unwrap() error {
	return e.Cause
}

// WithCode returns a copy of the error with a machine-readable code.
func (e Error) WithCode(code int) Error {
	e.Code = code
	return e
}

// WithCause returns a copy of the error wrapping an underlying error.
func (e Error) WithCause(cause error) Error {
	e.Cause = cause
	return e
}
