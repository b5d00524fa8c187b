package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind buckets a failed call into the categories the console surfaces
// differently.
type ErrorKind int

const (
	// KindNetwork means no response was received.
	KindNetwork ErrorKind = iota
	// KindAuth means the session could not be (re)established.
	KindAuth
	// KindValidation means the backend rejected the request (400); its
	// message is shown verbatim.
	KindValidation
	// KindServer means the backend failed (5xx); not retried.
	KindServer
	// KindProtocol means the response body did not match the documented
	// shape.
	KindProtocol
	// KindUnexpected covers any other non-2xx status.
	KindUnexpected
)

// Error tags a failed backend call with the operation's identity. Facade
// methods never swallow failures; every error that crosses the facade
// boundary is one of these.
type Error struct {
	Op      string
	Status  int
	Message string
	Kind    ErrorKind
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage returns the text the console shows for this failure.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindNetwork:
		return "Could not reach the server. Check your connection."
	case KindAuth:
		return "Your session has expired. Please log in again."
	case KindValidation:
		if e.Message != "" {
			return e.Message
		}
		return "The request was rejected. Check the entered values."
	case KindServer:
		return "The server had a problem. Try again later."
	default:
		return "Something went wrong. Try again."
	}
}

func classify(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindUnexpected
	}
}

// AsError unwraps err into a facade *Error, if it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
