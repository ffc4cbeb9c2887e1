package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testConfig() RateLimitConfig {
	return RateLimitConfig{
		RatePerSecond:   5,
		Burst:           5,
		CleanupInterval: time.Minute,
		MaxAge:          time.Minute,
	}
}

func TestRateLimiter_BasicLimit(t *testing.T) {
	rl := NewRateLimiter(testConfig())
	defer rl.Stop()

	for i := 0; i < 5; i++ {
		if !rl.Allow("test-key") {
			t.Errorf("request %d should have been allowed", i)
		}
	}

	if rl.Allow("test-key") {
		t.Error("request should have been rate limited")
	}
}

func TestRateLimiter_DifferentKeys(t *testing.T) {
	rl := NewRateLimiter(testConfig())
	defer rl.Stop()

	for i := 0; i < 5; i++ {
		rl.Allow("key1")
	}

	if rl.Allow("key1") {
		t.Error("key1 should be rate limited")
	}
	if !rl.Allow("key2") {
		t.Error("key2 should not be rate limited")
	}
}

func TestRateLimitMiddleware_LimitsByIP(t *testing.T) {
	rl := NewRateLimiter(testConfig())
	defer rl.Stop()

	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	allowed, limited := 0, 0
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest("POST", "/api/reports", nil)
		req.RemoteAddr = "203.0.113.7:54321"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		switch w.Code {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
			limited++
		}
	}

	if allowed != 5 {
		t.Errorf("expected 5 allowed, got %d", allowed)
	}
	if limited != 5 {
		t.Errorf("expected 5 limited, got %d", limited)
	}
}

func TestRateLimitMiddleware_SeparateIPsSeparateBudgets(t *testing.T) {
	rl := NewRateLimiter(testConfig())
	defer rl.Stop()

	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("POST", "/api/reports", nil)
		req.RemoteAddr = "203.0.113.1:1000"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest("POST", "/api/reports", nil)
	req.RemoteAddr = "203.0.113.2:1000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("second IP should have its own budget, got %d", w.Code)
	}
}
