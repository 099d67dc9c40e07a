// Package httperr defines errors that carry the HTTP status they should be
// reported with.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error with an explicit HTTP status code.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New returns an Error with the given status code and formatted message.
func New(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// BadGateway reports a failed upstream dependency.
func BadGateway(format string, args ...any) *Error {
	return New(http.StatusBadGateway, format, args...)
}

// Status maps err to the status code and message a client should see.
// Errors that are not (and do not wrap) an *Error map to 500 with the
// error's own message.
func Status(err error) (int, string) {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}
	return http.StatusInternalServerError, err.Error()
}
