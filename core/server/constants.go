package server

import (
	"runtime"
	"time"
)

const (
	// DefaultKeepAliveTimeout bounds idle time between requests on a
	// reused connection. Zero disables keep-alive entirely.
	DefaultKeepAliveTimeout = 5 * time.Second

	// DefaultReadTimeout bounds how long the server waits for a
	// complete request before aborting the connection.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout bounds how long the server waits to flush a
	// response.
	DefaultWriteTimeout = 1 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful
	// shutdown.
	DefaultShutdownTimeout = 30 * time.Second

	// threadsPerCPU scales the default dispatch concurrency cap.
	threadsPerCPU = 8
)

// DefaultThreads returns the default cap on concurrently dispatched
// requests: 8 per available CPU. It is an explicit function rather
// than a package variable so tests and callers inject deterministic
// values through Config or WithThreads.
func DefaultThreads() int {
	return threadsPerCPU * runtime.NumCPU()
}
