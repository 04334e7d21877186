// Package server binds an anvil.Handler to a concrete transport
// listener. It wraps the standard http.Server, which plays the roles
// of transport listener and wire-protocol parser, and drives the
// per-connection cycle: build the request envelope, dispatch it to the
// handler, and write the response back, substituting well-formed error
// responses when construction or handling fails.
//
// # Basic Usage
//
//	handler := anvil.HandlerFunc(func(r *anvil.Request) (*anvil.Response, error) {
//		return anvil.String("Hello, World!"), nil
//	})
//
//	srv := server.New(":8080",
//		server.WithLogger(slog.Default()),
//		server.WithReadTimeout(10*time.Second),
//	)
//	if err := srv.Start(ctx, handler); err != nil {
//		log.Fatal(err)
//	}
//
// # Non-blocking Start
//
// Run returns an errgroup-compatible function, acting as the
// completion handle for callers that must not block on the listener:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	// ... other components ...
//	if err := g.Wait(); err != nil {
//		log.Fatal(err)
//	}
//
// # Configuration
//
// Timeouts default to 5s keep-alive, 30s read, and 1s write; a zero
// duration disables the corresponding timeout, and a zero keep-alive
// also disables connection reuse. The dispatch concurrency cap
// defaults to 8 per available CPU and is computed by DefaultThreads at
// configuration-construction time, never hidden in package state.
package server
