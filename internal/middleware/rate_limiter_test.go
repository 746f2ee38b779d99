package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow(-100) {
			t.Fatalf("Allow() = false on request %d, want true", i+1)
		}
	}
	if rl.Allow(-100) {
		t.Error("Allow() = true after limit, want false")
	}

	// Other chats are unaffected
	if !rl.Allow(-200) {
		t.Error("Allow() = false for a different chat, want true")
	}

	rl.Reset()
	if !rl.Allow(-100) {
		t.Error("Allow() = false after Reset, want true")
	}
}
