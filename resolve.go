package anvil

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ResolveURL normalizes a wire-level request target into one fully
// qualified URL. The target may be an absolute URI (parsed directly,
// any Host header is ignored) or an absolute path. An absolute path is
// qualified with the Host header when present; without one, HTTP/1.0
// and earlier fall back to the local socket address, while HTTP/1.1
// and later fail with ErrMissingHost. Every other target form
// (asterisk-form, authority-form) fails with ErrUnsupportedTarget.
//
// Resolution is pure and synchronous. The returned URL always carries
// a lower-case scheme.
func ResolveURL(target string, version ProtoVersion, host string, localAddr net.Addr, protocol Protocol) (*url.URL, error) {
	switch {
	case isAbsoluteURI(target):
		u, err := url.Parse(target)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedURL, target, err)
		}
		u.Scheme = strings.ToLower(u.Scheme)
		return u, nil

	case strings.HasPrefix(target, "/"):
		raw, err := qualifyPath(target, version, host, localAddr, protocol)
		if err != nil {
			return nil, err
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedURL, raw, err)
		}
		return u, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTarget, target)
	}
}

// qualifyPath assembles "scheme://authority<path>" for an
// absolute-path request target.
func qualifyPath(path string, version ProtoVersion, host string, localAddr net.Addr, protocol Protocol) (string, error) {
	if host != "" {
		hostname, port := SplitHostPort(host)
		if hostname == "" {
			return "", fmt.Errorf("%w: invalid host header %q", ErrMalformedURL, host)
		}
		authority := hostname
		if strings.Contains(hostname, ":") {
			// Bare IPv6 literal, re-bracket for the authority part.
			authority = "[" + hostname + "]"
		}
		if port != "" {
			authority = net.JoinHostPort(hostname, port)
		}
		return protocol.Scheme() + "://" + authority + path, nil
	}

	if !version.AtLeast(1, 1) {
		// Host headers are optional before HTTP/1.1; fall back to the
		// local socket address.
		tcp, ok := localAddr.(*net.TCPAddr)
		if !ok || tcp.IP == nil {
			return "", fmt.Errorf("%w: local address %v is not an ip endpoint", ErrUnsupportedTarget, localAddr)
		}
		if ip4 := tcp.IP.To4(); ip4 != nil {
			return fmt.Sprintf("%s://%s:%d%s", protocol.Scheme(), ip4, tcp.Port, path), nil
		}
		return fmt.Sprintf("%s://[%s]:%d%s", protocol.Scheme(), tcp.IP, tcp.Port, path), nil
	}

	return "", fmt.Errorf("%w: %s requires a host header for path target %q", ErrMissingHost, version, path)
}

// SplitHostPort splits a Host header value into hostname and optional
// port. IPv6 literals are returned unbracketed. An empty hostname
// signals an unusable value.
func SplitHostPort(hostport string) (hostname, port string) {
	if h, p, err := net.SplitHostPort(hostport); err == nil {
		return h, p
	}
	// No port part. Unbracket a bare IPv6 literal.
	hostname = strings.TrimSuffix(strings.TrimPrefix(hostport, "["), "]")
	return hostname, ""
}

// isAbsoluteURI reports whether the request target is in absolute-URI
// form, i.e. starts with a valid scheme followed by "://". This keeps
// authority-form targets like "example.com:8080" out of the URI
// branch.
func isAbsoluteURI(target string) bool {
	i := strings.Index(target, "://")
	if i <= 0 {
		return false
	}
	for pos, r := range target[:i] {
		switch {
		case 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case pos > 0 && ('0' <= r && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
