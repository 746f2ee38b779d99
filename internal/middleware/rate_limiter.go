package middleware

import (
	"sync"
	"time"
)

// RateLimiter throttles command handling per chat group with a simple
// in-memory fixed window.
type RateLimiter struct {
	chatLimits map[int64]*chatLimit
	mu         sync.Mutex

	maxRequests int
	window      time.Duration
}

type chatLimit struct {
	requests  int
	resetTime time.Time
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		chatLimits:  make(map[int64]*chatLimit),
		maxRequests: maxRequests,
		window:      window,
	}

	go rl.cleanup()

	return rl
}

// Allow reports whether a chat may issue another command in the current
// window, counting this attempt.
func (rl *RateLimiter) Allow(chatID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	limit, exists := rl.chatLimits[chatID]
	if !exists || now.After(limit.resetTime) {
		rl.chatLimits[chatID] = &chatLimit{
			requests:  1,
			resetTime: now.Add(rl.window),
		}
		return true
	}

	if limit.requests >= rl.maxRequests {
		return false
	}

	limit.requests++
	return true
}

// cleanup removes expired entries.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for chatID, limit := range rl.chatLimits {
			if now.After(limit.resetTime) {
				delete(rl.chatLimits, chatID)
			}
		}
		rl.mu.Unlock()
	}
}

// Reset clears all limits (useful for testing).
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.chatLimits = make(map[int64]*chatLimit)
}
