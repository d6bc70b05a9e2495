package ratelimit

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

func TestAllow_BurstThenRefill(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := New(Config{Enabled: true, RequestsPerSecond: 1, BurstSize: 2}, slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithClock(func() time.Time { return now }))

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"), "burst exhausted")
	assert.True(t, l.Allow("b"), "buckets are per client")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("a"), "one token refilled")
}

func TestAllow_SweepsIdleClients(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := New(Config{Enabled: true, RequestsPerSecond: 1, BurstSize: 1}, slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithClock(func() time.Time { return now }))

	l.Allow("idle")
	now = now.Add(idleTTL + time.Minute)
	l.Allow("fresh")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.clients, "idle")
	assert.Contains(t, l.clients, "fresh")
}

func TestMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	t.Run("disabled passes through", func(t *testing.T) {
		h := New(Config{Enabled: false}, logger).Middleware(ok)
		for i := 0; i < 5; i++ {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planets", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("enabled returns 429 after burst", func(t *testing.T) {
		h := New(Config{Enabled: true, RequestsPerSecond: 0.001, BurstSize: 1}, logger).Middleware(ok)
		req := httptest.NewRequest(http.MethodGet, "/planets", nil)
		req = req.WithContext(requestcontext.WithClientIP(req.Context(), "10.0.0.9"))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})
}
