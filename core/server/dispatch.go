package server

import (
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/sync/semaphore"

	"github.com/dmitrymomot/anvil"
	"github.com/dmitrymomot/anvil/core/logger"
)

// Dispatcher adapts an anvil.Handler to http.Handler, driving the
// per-connection cycle: construct the request envelope, invoke the
// handler, write the response. Construction failures are answered with
// an empty 400 without involving the handler; handler failures are
// answered with the fallback response carried by the error. Neither
// path ever drops a successfully-parsed connection without a response.
type Dispatcher struct {
	handler  anvil.Handler
	logger   *slog.Logger
	protocol anvil.Protocol
	sem      *semaphore.Weighted
}

// NewDispatcher creates a Dispatcher for the given handler. A nil
// logger discards dispatch logs; threads below one leaves the dispatch
// concurrency unbounded.
func NewDispatcher(handler anvil.Handler, protocol anvil.Protocol, log *slog.Logger, threads int) *Dispatcher {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d := &Dispatcher{
		handler:  handler,
		logger:   log,
		protocol: protocol,
	}
	if threads > 0 {
		d.sem = semaphore.NewWeighted(int64(threads))
	}
	return d
}

// ServeHTTP implements http.Handler.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if d.sem != nil {
		// Queued requests give up when the client goes away.
		if err := d.sem.Acquire(r.Context(), 1); err != nil {
			return
		}
		defer d.sem.Release(1)
	}

	req, err := anvil.FromHTTP(r, d.protocol)
	if err != nil {
		d.logger.Error("failed to construct request",
			logger.Component("server"),
			slog.String("method", r.Method),
			slog.String("target", r.RequestURI),
			logger.Error(err))
		if err := anvil.BadRequest().Render(w); err != nil {
			d.logger.Error("failed to write response", logger.Component("server"), logger.Error(err))
		}
		return
	}

	res := d.dispatch(req)

	if err := res.Render(w); err != nil {
		d.logger.Error("failed to write response",
			logger.Component("server"),
			slog.String("request", req.String()),
			logger.Error(err))
	}
}

// dispatch invokes the handler once, converting failures and panics
// into the response the connection gets instead.
func (d *Dispatcher) dispatch(req *anvil.Request) (res *anvil.Response) {
	defer func() {
		if v := recover(); v != nil {
			d.logger.Error("panic while handling request",
				logger.Component("server"),
				slog.String("request", req.String()),
				logger.Error(toError(v)))
			res = anvil.InternalServerError()
		}
	}()

	res, err := d.handler.Handle(req)
	switch {
	case err != nil:
		d.logger.Error("handler failed",
			logger.Component("server"),
			slog.String("request_id", req.ID()),
			slog.String("method", req.Method()),
			slog.String("url", req.URL().String()),
			logger.Error(err))
		return anvil.FallbackResponse(err)
	case res == nil:
		d.logger.Error("handler returned nil response",
			logger.Component("server"),
			slog.String("request", req.String()))
		return anvil.FallbackResponse(anvil.ErrNilResponse)
	default:
		return res
	}
}
