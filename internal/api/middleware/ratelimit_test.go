package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.allow("client-a") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("client-a") {
		t.Error("request over the limit should be blocked")
	}

	// Other clients have their own window.
	if !rl.allow("client-b") {
		t.Error("a different client should not share the window")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.allow("client") {
		t.Fatal("first request should be allowed")
	}
	if rl.allow("client") {
		t.Fatal("second request inside the window should be blocked")
	}

	time.Sleep(15 * time.Millisecond)
	if !rl.allow("client") {
		t.Error("request after the window reset should be allowed")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if ip := clientIP(req); ip != "203.0.113.7" {
		t.Errorf("clientIP = %q, want first forwarded hop", ip)
	}
}
