package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/formit/auth-service/internal/utils"
	"github.com/formit/auth-service/models"
)

// rateLimiter hands out a token bucket per client key. Buckets refill at
// limit/interval with the full limit available as burst, and clients idle
// for longer than staleAfter are evicted, so the tracker stays bounded by
// the number of recently active clients. State lives in process memory and
// resets on service restart; there is no shared state across replicas.
type rateLimiter struct {
	mu         sync.Mutex
	clients    map[string]*rateClient
	limit      rate.Limit
	burst      int
	staleAfter time.Duration
	lastSweep  time.Time
}

type rateClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newRateLimiter(limit int, interval time.Duration) *rateLimiter {
	return &rateLimiter{
		clients:    make(map[string]*rateClient),
		limit:      rate.Limit(float64(limit) / interval.Seconds()),
		burst:      limit,
		staleAfter: 3 * interval,
		lastSweep:  time.Now(),
	}
}

// allow reports whether one more request from key fits under its bucket.
func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.sweep(now)

	client, ok := rl.clients[key]
	if !ok {
		client = &rateClient{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = client
	}
	client.lastSeen = now

	return client.limiter.Allow()
}

// sweep drops clients not seen for staleAfter. Runs at most once per
// staleAfter, piggybacked on allow, so no background goroutine is needed.
func (rl *rateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.staleAfter {
		return
	}
	rl.lastSweep = now

	cutoff := now.Add(-rl.staleAfter)
	for key, client := range rl.clients {
		if client.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// rateLimit guards the public route group with a per-IP limiter.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.allow(clientIP(r)) {
			utils.WriteJSON(w, models.ErrorResponse{ //nolint:errcheck
				Status:  "error",
				Message: "too many requests",
				Code:    "rate_limited",
			}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
