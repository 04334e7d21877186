package anvil

// Middleware wraps a Handler to add cross-cutting behavior. Chaining
// is a decorator over the Handler contract, not a separate mechanism:
// every link receives the same *Request and shares its extensions
// store.
type Middleware func(next Handler) Handler

// Chain builds a single handler from a middleware stack and endpoint.
func Chain(endpoint Handler, middlewares ...Middleware) Handler {
	// Start with the endpoint
	handler := endpoint

	// Wrap in middleware in reverse order
	// so the first middleware runs first
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}
