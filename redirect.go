package anvil

import "net/http"

// redirect builds a redirect response. Status codes outside the 3xx
// range default to 302 Found.
func redirect(url string, status int) *Response {
	if status < 300 || status >= 400 {
		status = http.StatusFound
	}
	r := Status(status)
	r.header.Set("Location", url)
	return r
}

// Redirect creates a 302 Found (temporary redirect) response.
func Redirect(url string) *Response {
	return redirect(url, http.StatusFound)
}

// RedirectPermanent creates a 301 Moved Permanently response. Use this
// when a resource has permanently moved to a new location.
func RedirectPermanent(url string) *Response {
	return redirect(url, http.StatusMovedPermanently)
}

// RedirectSeeOther creates a 303 See Other response, commonly used
// after form submissions to redirect to a result page.
func RedirectSeeOther(url string) *Response {
	return redirect(url, http.StatusSeeOther)
}
