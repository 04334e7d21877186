package anvil

// Protocol selects the URI scheme embedded into resolved request URLs.
// It performs no transport-security work itself; TLS termination
// belongs to the transport listener.
type Protocol int

const (
	// HTTP is plaintext HTTP.
	HTTP Protocol = iota
	// HTTPS is HTTP over TLS.
	HTTPS
)

// Scheme returns the name used for the protocol in a URI's scheme part.
func (p Protocol) Scheme() string {
	if p == HTTPS {
		return "https"
	}
	return "http"
}

// String implements fmt.Stringer.
func (p Protocol) String() string {
	return p.Scheme()
}
