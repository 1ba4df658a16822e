package executor

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMethod is returned by the HTTP transport for a verb it
// does not implement. It is an execution-class error.
var ErrUnsupportedMethod = errors.New("unsupported http method")

// ErrorClass separates the two failure classes of a Send call. The
// distinction matters to callers: execution failures are infrastructure
// problems and may be worth retrying, response failures reproduce on
// retry and indicate schema drift or a bug.
type ErrorClass string

const (
	// ErrorClassExecution marks transport-level failures: the network
	// call itself failed, or the transport refused the request.
	ErrorClassExecution ErrorClass = "execution"

	// ErrorClassResponse marks response-interpretation failures: the
	// call succeeded, but the body could not be decoded as expected.
	ErrorClassResponse ErrorClass = "response"
)

// Error wraps a failure from Send with its class.
type Error struct {
	Class ErrorClass
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Class, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

func execError(err error) *Error {
	return &Error{Class: ErrorClassExecution, Err: err}
}

func responseError(err error) *Error {
	return &Error{Class: ErrorClassResponse, Err: err}
}

// IsExecution reports whether err is an execution-class Send failure.
func IsExecution(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Class == ErrorClassExecution
}

// IsResponse reports whether err is a response-class Send failure.
func IsResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Class == ErrorClassResponse
}
