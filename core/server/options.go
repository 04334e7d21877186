package server

import (
	"crypto/tls"
	"log/slog"
	"time"

	"github.com/dmitrymomot/anvil"
)

// Option configures server behavior.
type Option func(*Server)

// WithLogger sets a custom logger for server operations and dispatch
// failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithKeepAliveTimeout sets the idle timeout between requests on a
// reused connection. Zero disables keep-alive.
func WithKeepAliveTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.keepAlive = timeout
	}
}

// WithReadTimeout sets the timeout for reading a complete request.
// Zero disables the timeout.
func WithReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = timeout
	}
}

// WithWriteTimeout sets the timeout for flushing a response. Zero
// disables the timeout.
func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.writeTimeout = timeout
	}
}

// WithShutdownTimeout sets the maximum time to wait for graceful
// shutdown.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdown = timeout
	}
}

// WithThreads caps the number of concurrently dispatched requests.
// Values below one leave the dispatch concurrency unbounded.
func WithThreads(n int) Option {
	return func(s *Server) {
		s.threads = n
	}
}

// WithProtocol selects the URI scheme embedded into resolved request
// URLs. Use anvil.HTTPS when a TLS-terminating collaborator sits in
// front of the listener.
func WithProtocol(p anvil.Protocol) Option {
	return func(s *Server) {
		s.protocol = p
	}
}

// WithTLS configures TLS settings for HTTPS serving. Resolved request
// URLs switch to the https scheme.
func WithTLS(config *tls.Config) Option {
	return func(s *Server) {
		s.tlsConfig = config
		if config != nil {
			s.protocol = anvil.HTTPS
		}
	}
}
