package anvil

import (
	"errors"
	"net/http"
)

// URL resolution errors. All of them are recoverable by the dispatch
// loop, which substitutes a 400 response; none ever reaches a handler.
var (
	// ErrMalformedURL means the request target (or the URL assembled
	// from it) could not be parsed. The wrapping error carries the
	// offending string.
	ErrMalformedURL = errors.New("malformed request url")

	// ErrMissingHost means an absolute-path target arrived without a
	// Host header on HTTP/1.1 or later, where the header is mandatory.
	ErrMissingHost = errors.New("missing host header")

	// ErrUnsupportedTarget means the request target is neither an
	// absolute URI nor an absolute path (asterisk-form and
	// authority-form are not supported).
	ErrUnsupportedTarget = errors.New("unsupported request target")
)

// Handler contract errors.
var (
	ErrNilResponse = errors.New("handler returned nil response")
)

// InternalServerError returns the generic error page written when a
// handler failure carries no usable fallback response.
func InternalServerError() *Response {
	return StringWithStatus(http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// BadRequest returns the empty-body response substituted when request
// construction itself fails, before any handler is involved.
func BadRequest() *Response {
	return Status(http.StatusBadRequest)
}
