// Package ratelimit throttles callers per client IP with token buckets.
package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/httputil"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

// idleTTL is how long an unused client bucket is kept before being swept.
const idleTTL = 10 * time.Minute

type Config struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type Limiter struct {
	cfg       Config
	logger    *slog.Logger
	now       func() time.Time
	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

type Option func(*Limiter)

// WithClock overrides the clock used for bucket refills and sweeps.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func New(cfg Config, logger *slog.Logger, opts ...Option) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		clients: make(map[string]*client),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()
	return l
}

// Allow consumes a token for key.
func (l *Limiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > idleTTL {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > idleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.BurstSize)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Middleware answers 429 once a client exhausts its bucket. The client key is
// the IP resolved by the metadata middleware.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.cfg.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)
		if ip == "" {
			ip = r.RemoteAddr
		}
		if !l.Allow(ip) {
			l.logger.WarnContext(ctx, "rate limit exceeded",
				"client_ip", ip,
				"requests_per_second", l.cfg.RequestsPerSecond,
				"burst_size", l.cfg.BurstSize,
				"request_id", requestcontext.RequestID(ctx),
			)
			w.Header().Set("Retry-After", strconv.Itoa(1))
			httputil.WriteError(w, dErrors.New(dErrors.CodeTooManyRequests, "Rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
