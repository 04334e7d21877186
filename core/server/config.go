package server

import (
	"time"

	"github.com/dmitrymomot/anvil"
	"github.com/dmitrymomot/anvil/core/config"
)

// Config holds server configuration with environment variable support.
// A zero timeout disables the corresponding timeout; a zero keep-alive
// additionally disables connection reuse.
type Config struct {
	// Server address
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Timeouts
	KeepAliveTimeout time.Duration `env:"SERVER_KEEP_ALIVE_TIMEOUT" envDefault:"5s"`
	ReadTimeout      time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout     time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"1s"`
	ShutdownTimeout  time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Threads caps concurrently dispatched requests. Zero picks
	// DefaultThreads().
	Threads int `env:"SERVER_THREADS" envDefault:"0"`

	// Secure embeds the https scheme into resolved request URLs, for
	// deployments where a collaborator terminates TLS in front of the
	// listener.
	Secure bool `env:"SERVER_SECURE" envDefault:"false"`
}

// DefaultConfig returns a Config with the framework defaults. Threads
// is computed here, at construction time, so callers can override it
// deterministically.
func DefaultConfig() Config {
	return Config{
		Addr:             ":8080",
		KeepAliveTimeout: DefaultKeepAliveTimeout,
		ReadTimeout:      DefaultReadTimeout,
		WriteTimeout:     DefaultWriteTimeout,
		ShutdownTimeout:  DefaultShutdownTimeout,
		Threads:          DefaultThreads(),
	}
}

// NewFromConfig creates a Server from configuration. Additional
// options override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}

	threads := cfg.Threads
	if threads == 0 {
		threads = DefaultThreads()
	}

	protocol := anvil.HTTP
	if cfg.Secure {
		protocol = anvil.HTTPS
	}

	configOpts := []Option{
		WithKeepAliveTimeout(cfg.KeepAliveTimeout),
		WithReadTimeout(cfg.ReadTimeout),
		WithWriteTimeout(cfg.WriteTimeout),
		WithShutdownTimeout(cfg.ShutdownTimeout),
		WithThreads(threads),
		WithProtocol(protocol),
	}

	return New(cfg.Addr, append(configOpts, opts...)...), nil
}

// NewFromEnv loads Config from the environment and creates a Server
// from it.
func NewFromEnv(opts ...Option) (*Server, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}
