package anvil

import (
	"fmt"
	"net/http"
	"time"
)

// WithHeaders adds custom HTTP headers to a response. Existing values
// for the same header names are replaced.
func WithHeaders(response *Response, headers map[string]string) *Response {
	if response == nil {
		return nil
	}
	for k, v := range headers {
		response.header.Set(k, v)
	}
	return response
}

// WithContentType overrides the Content-Type header of a response.
func WithContentType(response *Response, contentType string) *Response {
	if response == nil {
		return nil
	}
	response.header.Set("Content-Type", contentType)
	return response
}

// WithCookie adds a Set-Cookie header to a response.
func WithCookie(response *Response, cookie *http.Cookie) *Response {
	if response == nil || cookie == nil {
		return response
	}
	if v := cookie.String(); v != "" {
		response.header.Add("Set-Cookie", v)
	}
	return response
}

// WithCache sets cache control headers on a response. If maxAge > 0,
// Cache-Control and Expires allow caching for that duration; otherwise
// the headers prevent caching entirely.
func WithCache(response *Response, maxAge time.Duration) *Response {
	if response == nil {
		return nil
	}
	if maxAge > 0 {
		seconds := int(maxAge.Seconds())
		response.header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", seconds))
		response.header.Set("Expires", time.Now().Add(maxAge).Format(http.TimeFormat))
	} else {
		response.header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		response.header.Set("Pragma", "no-cache")
		response.header.Set("Expires", "0")
	}
	return response
}
