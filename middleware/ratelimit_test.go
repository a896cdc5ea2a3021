package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := &rateLimiter{
		requests: make(map[string]*clientRequest),
		limit:    2,
		window:   time.Minute,
	}
	now := time.Now()

	if _, ok := rl.allow("10.0.0.1", now); !ok {
		t.Fatal("first request blocked")
	}
	if _, ok := rl.allow("10.0.0.1", now); !ok {
		t.Fatal("second request blocked")
	}

	retryAfter, ok := rl.allow("10.0.0.1", now)
	if ok {
		t.Fatal("third request allowed past the limit")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("retryAfter = %v, want within (0, 1m]", retryAfter)
	}

	if _, ok := rl.allow("10.0.0.2", now); !ok {
		t.Error("unrelated client was limited")
	}

	if _, ok := rl.allow("10.0.0.1", now.Add(time.Minute+time.Second)); !ok {
		t.Error("expired window did not reset the count")
	}
}

func TestRateLimiterIndependentInstances(t *testing.T) {
	a := &rateLimiter{requests: make(map[string]*clientRequest), limit: 1, window: time.Minute}
	b := &rateLimiter{requests: make(map[string]*clientRequest), limit: 1, window: time.Minute}
	now := time.Now()

	a.allow("10.0.0.1", now)
	if _, ok := a.allow("10.0.0.1", now); ok {
		t.Fatal("limiter a should be exhausted")
	}
	if _, ok := b.allow("10.0.0.1", now); !ok {
		t.Error("limiter b must not share state with limiter a")
	}
}
