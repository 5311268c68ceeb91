package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter implements a simple in-memory fixed-window rate limiter
// keyed by client IP. Good enough for a single instance; a multi-instance
// deployment would want this in Redis instead.
type RateLimiter struct {
	clients  map[string]*clientWindow
	requests int
	window   time.Duration
	mu       sync.Mutex
}

type clientWindow struct {
	resetAt time.Time
	count   int
}

// NewRateLimiter creates a rate limiter allowing requests per window
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*clientWindow),
		requests: requests,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

// Middleware returns a rate limiting middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()
	c, ok := rl.clients[clientID]
	if !ok || now.After(c.resetAt) {
		rl.clients[clientID] = &clientWindow{count: 1, resetAt: now.Add(rl.window)}
		return true
	}

	if c.count >= rl.requests {
		return false
	}
	c.count++
	return true
}

// cleanup drops expired windows so the map doesn't grow forever
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now().UTC()
		for id, c := range rl.clients {
			if now.After(c.resetAt) {
				delete(rl.clients, id)
			}
		}
		rl.mu.Unlock()
	}
}

func clientIP(r *http.Request) string {
	// Trust X-Forwarded-For only as far as its first hop.
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i > 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
