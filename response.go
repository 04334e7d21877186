package anvil

import (
	"bytes"
	"io"
	"net/http"

	"github.com/dmitrymomot/anvil/pkg/typemap"
)

// Response is the envelope handlers produce: a status code, headers, a
// body stream, and a type-indexed extensions store so wrapping
// middleware can annotate responses on their way out. A zero status
// code renders as 200 OK.
type Response struct {
	status     int
	header     http.Header
	body       io.Reader
	extensions *typemap.Map
}

// NewResponse creates an empty response that renders as 200 OK.
func NewResponse() *Response {
	return &Response{
		header:     make(http.Header),
		extensions: typemap.New(),
	}
}

// String creates a text/plain response with 200 OK status.
func String(content string) *Response {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus creates a text/plain response with a custom status
// code.
func StringWithStatus(content string, status int) *Response {
	return BytesWithStatus([]byte(content), "text/plain; charset=utf-8", status)
}

// HTML creates a text/html response with 200 OK status.
func HTML(content string) *Response {
	return HTMLWithStatus(content, http.StatusOK)
}

// HTMLWithStatus creates a text/html response with a custom status
// code.
func HTMLWithStatus(content string, status int) *Response {
	return BytesWithStatus([]byte(content), "text/html; charset=utf-8", status)
}

// Bytes creates a response with a custom content type and 200 OK
// status.
func Bytes(content []byte, contentType string) *Response {
	return BytesWithStatus(content, contentType, http.StatusOK)
}

// BytesWithStatus creates a response with a custom content type and
// status code.
func BytesWithStatus(content []byte, contentType string, status int) *Response {
	r := NewResponse()
	r.status = status
	if contentType != "" {
		r.header.Set("Content-Type", contentType)
	}
	if len(content) > 0 {
		r.body = bytes.NewReader(content)
	}
	return r
}

// NoContent creates a 204 No Content response.
func NoContent() *Response {
	return Status(http.StatusNoContent)
}

// Status creates an empty response with the specified status code.
func Status(code int) *Response {
	r := NewResponse()
	r.status = code
	return r
}

// StatusCode returns the status code the response renders with; a zero
// stored code reports 200.
func (r *Response) StatusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// SetStatus overrides the status code.
func (r *Response) SetStatus(code int) *Response {
	r.status = code
	return r
}

// Header returns the response headers for reading and writing.
func (r *Response) Header() http.Header {
	return r.header
}

// Body returns the body stream, nil when the response is empty.
func (r *Response) Body() io.Reader {
	return r.body
}

// SetBody replaces the body stream.
func (r *Response) SetBody(body io.Reader) *Response {
	r.body = body
	return r
}

// Extensions returns the type-indexed store middleware use to annotate
// the response.
func (r *Response) Extensions() *typemap.Map {
	return r.extensions
}

// Render writes the response to the transport: headers first, then the
// status line, then the body stream. Called once by the dispatch loop;
// the body is consumed by rendering.
func (r *Response) Render(w http.ResponseWriter) error {
	for k, vv := range r.header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	w.WriteHeader(r.StatusCode())

	if r.body != nil {
		if _, err := io.Copy(w, r.body); err != nil {
			return err
		}
	}
	return nil
}
