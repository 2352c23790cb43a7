package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Close()

	for i := 0; i < 3; i++ {
		if !rl.Allow(1) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow(1) {
		t.Error("request over the limit should be rejected")
	}

	// Other users have their own window.
	if !rl.Allow(2) {
		t.Error("different user should not share the limit")
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)
	defer rl.Close()

	if !rl.Allow(1) {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow(1) {
		t.Fatal("second immediate request should be rejected")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.Allow(1) {
		t.Error("request after the window should be allowed again")
	}
}
