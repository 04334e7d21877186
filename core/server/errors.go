package server

import (
	"errors"
	"fmt"
)

var (
	// ErrServerAlreadyRunning is returned when Start is called on a
	// server that is already serving.
	ErrServerAlreadyRunning = errors.New("server is already running")

	// ErrMissingAddress is returned when the server address is not
	// provided.
	ErrMissingAddress = errors.New("server address is required")

	// ErrNilHandler is returned when Start is called without a
	// handler.
	ErrNilHandler = errors.New("handler must not be nil")
)

// toError converts a recovered panic value to an error.
func toError(v any) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("panic: %v", e)
	}
}
