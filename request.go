package anvil

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/dmitrymomot/anvil/pkg/typemap"
)

// RawRequest is the as-parsed wire-level request handed over by the
// transport collaborator, before normalization. Target is the
// request-target exactly as it appeared on the request line. Host is
// the Host header value, empty when the header was absent.
type RawRequest struct {
	Method string
	Target string
	Proto  ProtoVersion
	Host   string
	Header http.Header
	Body   io.ReadCloser
}

// Request is the envelope given to every Handler. URL, method,
// protocol version, and local address are fixed at construction time;
// headers and the extensions store stay mutable for the life of the
// request. The body is a single-pass stream owned by the envelope.
type Request struct {
	id         string
	url        *url.URL
	localAddr  net.Addr
	header     http.Header
	body       io.ReadCloser
	method     string
	proto      ProtoVersion
	extensions *typemap.Map
}

// NewRequest normalizes a raw transport request into a Request
// envelope. The URL is resolved per ResolveURL; a resolution failure
// is returned with the underlying cause wrapped. Ownership of the raw
// body stream moves to the envelope.
func NewRequest(raw RawRequest, localAddr net.Addr, protocol Protocol) (*Request, error) {
	u, err := ResolveURL(raw.Target, raw.Proto, raw.Host, localAddr, protocol)
	if err != nil {
		return nil, fmt.Errorf("resolve request url: %w", err)
	}

	header := raw.Header
	if header == nil {
		header = make(http.Header)
	}
	body := raw.Body
	if body == nil {
		body = http.NoBody
	}

	return &Request{
		id:         uuid.NewString(),
		url:        u,
		localAddr:  localAddr,
		header:     header,
		body:       body,
		method:     raw.Method,
		proto:      raw.Proto,
		extensions: typemap.New(),
	}, nil
}

// FromHTTP builds a Request envelope from a net/http server request.
// The request-target is taken from RequestURI and the local socket
// address from the request context, where the http.Server stores it.
func FromHTTP(r *http.Request, protocol Protocol) (*Request, error) {
	var localAddr net.Addr
	if addr, ok := r.Context().Value(http.LocalAddrContextKey).(net.Addr); ok {
		localAddr = addr
	}

	target := r.RequestURI
	if target == "" && r.URL != nil {
		target = r.URL.RequestURI()
	}

	return NewRequest(RawRequest{
		Method: r.Method,
		Target: target,
		Proto:  ProtoVersion{Major: r.ProtoMajor, Minor: r.ProtoMinor},
		Host:   r.Host,
		Header: r.Header,
		Body:   r.Body,
	}, localAddr, protocol)
}

// ID returns the unique identifier assigned to the request at
// construction time, used for log correlation.
func (r *Request) ID() string {
	return r.id
}

// URL returns a copy of the resolved request URL. The resolved URL is
// fixed for the life of the request; mutating the copy has no effect
// on the envelope.
func (r *Request) URL() *url.URL {
	u := *r.url
	return &u
}

// Method returns the request method.
func (r *Request) Method() string {
	return r.method
}

// Proto returns the HTTP protocol version of the request.
func (r *Request) Proto() ProtoVersion {
	return r.proto
}

// LocalAddr returns the local socket address of the connection the
// request arrived on.
func (r *Request) LocalAddr() net.Addr {
	return r.localAddr
}

// Header returns the request headers. The map is shared across a
// middleware chain; links may read and write it until the response is
// written.
func (r *Request) Header() http.Header {
	return r.header
}

// Body returns the request body stream. The stream is single-pass:
// once consumed it cannot be re-read unless a collaborator buffered
// it.
func (r *Request) Body() io.ReadCloser {
	return r.body
}

// Extensions returns the type-indexed store shared by all links of a
// middleware chain handling this request.
func (r *Request) Extensions() *typemap.Map {
	return r.extensions
}

// String returns a short debug summary used in dispatch logs.
func (r *Request) String() string {
	return fmt.Sprintf("%s %s (local %v)", r.method, r.url, r.localAddr)
}
