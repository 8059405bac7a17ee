package auth

import "net/http"

// Error is an authentication failure with its own status code
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) StatusCode() int {
	return e.Status
}

var (
	ErrMissingHeader = &Error{Status: http.StatusUnauthorized, Message: "Missing Authorization Header"}
	ErrBadHeader     = &Error{Status: http.StatusUnprocessableEntity, Message: "Bad Authorization header. Expected value 'Bearer <JWT>'"}
	ErrExpired       = &Error{Status: http.StatusUnprocessableEntity, Message: "Signature has expired"}
	ErrBadSignature  = &Error{Status: http.StatusUnprocessableEntity, Message: "Signature verification failed"}
	ErrNotAccess     = &Error{Status: http.StatusUnprocessableEntity, Message: "Only access tokens are allowed"}
	ErrNoSubject     = &Error{Status: http.StatusUnprocessableEntity, Message: "Token is missing the sub claim"}
	ErrRevoked       = &Error{Status: http.StatusUnauthorized, Message: "Token has been revoked"}
	ErrDenylistDown  = &Error{Status: http.StatusServiceUnavailable, Message: "Token denylist is unavailable"}
)

// decodeError covers malformed tokens and unexpected claims
func decodeError(msg string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: msg}
}
