// Package anvil provides the core of an HTTP middleware framework: a
// protocol-version-agnostic request/response envelope pair, a
// type-indexed extensions store for passing request-scoped data between
// middleware, and the handler dispatch contract that turns handler
// failures into well-formed HTTP responses instead of dropped
// connections.
//
// The package deliberately stops at the envelope boundary. The
// transport listener, the wire-protocol parser, and concrete middleware
// (routing, logging, static files) are external collaborators; net/http
// fills the first two roles through the adapter in
// github.com/dmitrymomot/anvil/core/server.
//
// # Request Flow
//
// Every accepted connection goes through the same cycle: the raw
// transport request is normalized into a Request (URL resolution across
// HTTP/1.0 and HTTP/1.1 request-target semantics happens here), the
// Handler is invoked, and the resulting Response is written back. A
// handler failure never crashes the connection: the *HandlerError it
// returns carries the fallback response the dispatch loop writes
// instead.
//
//	handler := anvil.HandlerFunc(func(r *anvil.Request) (*anvil.Response, error) {
//		return anvil.String("Hello, World!"), nil
//	})
//
//	srv := server.New(":8080")
//	if err := srv.Start(context.Background(), handler); err != nil {
//		log.Fatal(err)
//	}
//
// # Middleware
//
// Middleware is a decorator over the Handler contract, not a separate
// mechanism. All links of a chain share one extensions store per
// request:
//
//	logging := func(next anvil.Handler) anvil.Handler {
//		return anvil.HandlerFunc(func(r *anvil.Request) (*anvil.Response, error) {
//			slog.Info("request", "method", r.Method(), "url", r.URL())
//			return next.Handle(r)
//		})
//	}
//
//	h := anvil.Chain(handler, logging)
package anvil
