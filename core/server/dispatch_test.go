package server_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/anvil"
	"github.com/dmitrymomot/anvil/core/server"
)

// syncBuffer collects log output safely across handler goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func okHandler(body string) anvil.Handler {
	return anvil.HandlerFunc(func(r *anvil.Request) (*anvil.Response, error) {
		return anvil.String(body), nil
	})
}

func TestDispatcher_Success(t *testing.T) {
	t.Parallel()

	d := server.NewDispatcher(okHandler("hello"), anvil.HTTP, nil, 0)

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/greet", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestDispatcher_HandlerSeesResolvedURL(t *testing.T) {
	t.Parallel()

	var gotURL string
	h := anvil.HandlerFunc(func(r *anvil.Request) (*anvil.Response, error) {
		gotURL = r.URL().String()
		return anvil.NoContent(), nil
	})
	d := server.NewDispatcher(h, anvil.HTTPS, nil, 0)

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders?page=2", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://example.com/orders?page=2", gotURL)
}

func TestDispatcher_HandlerFailure(t *testing.T) {
	t.Parallel()

	t.Run("writes_carried_fallback_and_logs", func(t *testing.T) {
		t.Parallel()

		log, buf := newTestLogger()
		failing := anvil.HandlerFunc(func(r *anvil.Request) (*anvil.Response, error) {
			return nil, anvil.Fail(errors.New("backend down"), anvil.StringWithStatus("try later", http.StatusServiceUnavailable))
		})
		d := server.NewDispatcher(failing, anvil.HTTP, log, 0)

		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "try later", rec.Body.String())

		logged := buf.String()
		assert.Contains(t, logged, "handler failed")
		assert.Contains(t, logged, http.MethodGet)
		assert.Contains(t, logged, "http://example.com/orders")
		assert.Contains(t, logged, "backend down")
	})

	t.Run("plain_error_gets_generic_page", func(t *testing.T) {
		t.Parallel()

		failing := anvil.HandlerFunc(func(r *anvil.Request) (*anvil.Response, error) {
			return nil, errors.New("boom")
		})
		d := server.NewDispatcher(failing, anvil.HTTP, nil, 0)

		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("nil_response_without_error_gets_generic_page", func(t *testing.T) {
		t.Parallel()

		h := anvil.HandlerFunc(func(r *anvil.Request) (*anvil.Response, error) {
			return nil, nil
		})
		d := server.NewDispatcher(h, anvil.HTTP, nil, 0)

		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("panic_is_recovered", func(t *testing.T) {
		t.Parallel()

		log, buf := newTestLogger()
		panicking := anvil.HandlerFunc(func(r *anvil.Request) (*anvil.Response, error) {
			panic("handler exploded")
		})
		d := server.NewDispatcher(panicking, anvil.HTTP, log, 0)

		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), "handler exploded")
	})
}

func TestDispatcher_MalformedRequest(t *testing.T) {
	t.Parallel()

	t.Run("asterisk_form_never_reaches_handler", func(t *testing.T) {
		t.Parallel()

		log, buf := newTestLogger()
		reached := false
		h := anvil.HandlerFunc(func(r *anvil.Request) (*anvil.Response, error) {
			reached = true
			return anvil.NoContent(), nil
		})
		d := server.NewDispatcher(h, anvil.HTTP, log, 0)

		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "*", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.False(t, reached)
		assert.Contains(t, buf.String(), "failed to construct request")
	})

	t.Run("missing_host_on_http11", func(t *testing.T) {
		t.Parallel()

		reached := false
		h := anvil.HandlerFunc(func(r *anvil.Request) (*anvil.Response, error) {
			reached = true
			return anvil.NoContent(), nil
		})
		d := server.NewDispatcher(h, anvil.HTTP, nil, 0)

		hr := httptest.NewRequest(http.MethodGet, "/orders", nil)
		hr.Host = ""

		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, hr)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, reached)
	})
}

func TestDispatcher_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	d := server.NewDispatcher(okHandler("ok"), anvil.HTTP, nil, 1)

	// With a single dispatch slot sequential requests must still all
	// succeed.
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
