// Package errs holds the error type for business-rule failures that carry
// their own HTTP status.
package errs

import (
	"fmt"
	"net/http"
)

// Error is a client-facing failure with a status code and message
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status for e
func (e *Error) StatusCode() int {
	return e.Status
}

// BadRequest builds a 400 error
func BadRequest(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}
