package auth

import (
	"sync"
	"time"
)

// RateLimiter implements a token bucket rate limiter per user
type RateLimiter struct {
	mu      sync.RWMutex
	buckets map[string]*tokenBucket
	limits  map[string]int // RPM limit per user
}

type tokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		limits:  make(map[string]int),
	}
}

// SetLimit sets the rate limit for a user in requests per minute
func (r *RateLimiter) SetLimit(username string, rpm int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.limits[username] = rpm

	// Allow burst up to ~10 seconds worth of requests, minimum 10
	maxTokens := float64(rpm) / 6
	if maxTokens < 10 {
		maxTokens = 10
	}

	r.buckets[username] = &tokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: float64(rpm) / 60.0,
		lastRefill: time.Now(),
	}
}

// Allow consumes one token for the user if available. Users without a
// configured limit are always allowed.
func (r *RateLimiter) Allow(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, ok := r.buckets[username]
	if !ok {
		return true
	}

	// Refill based on elapsed time
	now := time.Now()
	elapsed := now.Sub(bucket.lastRefill).Seconds()
	bucket.tokens += elapsed * bucket.refillRate
	if bucket.tokens > bucket.maxTokens {
		bucket.tokens = bucket.maxTokens
	}
	bucket.lastRefill = now

	if bucket.tokens < 1 {
		return false
	}
	bucket.tokens--
	return true
}
