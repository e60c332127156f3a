package rate_limit

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per key. Buckets live until
// ResetRateLimit removes them, which session deletion listeners do.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[uuid.UUID]*rate.Limiter
}

type RateLimitResult struct {
	Allowed       bool      `json:"allowed"`
	Remaining     int       `json:"remaining"`
	ResetTime     time.Time `json:"resetTime"`
	RetryAfterSec int       `json:"retryAfterSec,omitempty"`
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiters: make(map[uuid.UUID]*rate.Limiter),
	}
}

// CheckRateLimit consumes one token from the key's bucket if available.
// The bucket is created on first use with the given limits; later calls
// reuse it, so limits are fixed per key until reset.
func (r *RateLimiter) CheckRateLimit(key uuid.UUID, rpsLimit, burstLimit int) *RateLimitResult {
	if rpsLimit <= 0 {
		rpsLimit = 1
	}
	if burstLimit <= 0 {
		burstLimit = max(rpsLimit*5, 5)
	}

	limiter := r.limiterFor(key, rpsLimit, burstLimit)

	allowed := limiter.Allow()

	remaining := int(math.Floor(limiter.Tokens()))
	if remaining < 0 {
		remaining = 0
	}
	if remaining > burstLimit {
		remaining = burstLimit
	}

	var retryAfterSec int
	if !allowed {
		// Suggest retry after enough time for at least one token
		retryAfterSec = int(math.Ceil(1.0 / float64(rpsLimit)))
		if retryAfterSec < 1 {
			retryAfterSec = 1
		}
	}

	var resetTime time.Time
	if remaining < burstLimit {
		timeToFullMs := math.Ceil(float64(burstLimit-remaining) * 1000.0 / float64(rpsLimit))
		resetTime = time.Now().Add(time.Duration(timeToFullMs) * time.Millisecond)
	} else {
		resetTime = time.Now()
	}

	return &RateLimitResult{
		Allowed:       allowed,
		Remaining:     remaining,
		ResetTime:     resetTime,
		RetryAfterSec: retryAfterSec,
	}
}

// ResetRateLimit drops the key's bucket, restoring a full burst on next use.
func (r *RateLimiter) ResetRateLimit(key uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.limiters, key)
}

func (r *RateLimiter) limiterFor(key uuid.UUID, rpsLimit, burstLimit int) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	limiter, exists := r.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rate.Limit(rpsLimit), burstLimit)
		r.limiters[key] = limiter
	}

	return limiter
}
