// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once
// and cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	type ServerConfig struct {
//		Addr        string        `env:"SERVER_ADDR" envDefault:":8080"`
//		ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application
// lifetime; later Load calls for the same type return the cached
// value. Different types are cached independently.
package config
