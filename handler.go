package anvil

import "errors"

// Handler is the contract every request-processing unit implements:
// consume a mutable Request, produce either a Response or an error. A
// failing handler should return a *HandlerError so the dispatch loop
// has a fallback response to write; plain errors get the generic error
// page.
//
// A Handler instance is shared read-only across all connections. Any
// shared mutable state it needs must provide its own synchronization.
type Handler interface {
	Handle(r *Request) (*Response, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(r *Request) (*Response, error)

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(r *Request) (*Response, error) {
	return f(r)
}

// HandlerError is a handler failure that carries the best available
// fallback response for the error. The dispatch loop writes the
// carried response, so a response is produced for every
// successfully-constructed request even when handling fails.
type HandlerError struct {
	Err      error
	Response *Response
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "handler failed"
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Fail wraps err with the fallback response the dispatch loop should
// write when the handler gives up.
func Fail(err error, response *Response) *HandlerError {
	return &HandlerError{Err: err, Response: response}
}

// FallbackResponse extracts the response attached to a handler
// failure. Errors without a usable attached response resolve to the
// generic error page.
func FallbackResponse(err error) *Response {
	var he *HandlerError
	if errors.As(err, &he) && he.Response != nil {
		return he.Response
	}
	return InternalServerError()
}
