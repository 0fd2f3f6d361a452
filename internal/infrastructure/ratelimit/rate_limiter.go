package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Policy is the size of a bucket and how fast it refills.
type Policy struct {
	MaxTokens  int
	RefillRate int
	RefillTime time.Duration
}

// LoginPolicy allows five login attempts per username, then one more
// every thirty seconds.
var LoginPolicy = Policy{MaxTokens: 5, RefillRate: 1, RefillTime: 30 * time.Second}

var defaultPolicy = Policy{MaxTokens: 20, RefillRate: 1, RefillTime: 3 * time.Second}

// TokenBucket represents a token bucket for rate limiting
type TokenBucket struct {
	tokens     int
	policy     Policy
	lastRefill time.Time
}

func newTokenBucket(p Policy, now time.Time) *TokenBucket {
	return &TokenBucket{
		tokens:     p.MaxTokens,
		policy:     p,
		lastRefill: now,
	}
}

// allow consumes a token if one is left. Otherwise it reports how long
// until the next refill.
func (tb *TokenBucket) allow(now time.Time) (bool, time.Duration) {
	elapsed := now.Sub(tb.lastRefill)
	if refills := int(elapsed / tb.policy.RefillTime); refills > 0 {
		tb.tokens += refills * tb.policy.RefillRate
		if tb.tokens > tb.policy.MaxTokens {
			tb.tokens = tb.policy.MaxTokens
		}
		tb.lastRefill = tb.lastRefill.Add(time.Duration(refills) * tb.policy.RefillTime)
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true, 0
	}
	return false, tb.lastRefill.Add(tb.policy.RefillTime).Sub(now)
}

// RateLimiter keeps one bucket per key and action.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*TokenBucket
	policies map[string]Policy
	now      func() time.Time
}

func NewRateLimiter(policies map[string]Policy) *RateLimiter {
	return &RateLimiter{
		buckets:  make(map[string]*TokenBucket),
		policies: policies,
		now:      time.Now,
	}
}

// Allow checks if an action is allowed for key and consumes a token if so.
// Keys are case-insensitive.
func (rl *RateLimiter) Allow(key, action string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	id := strings.ToLower(key) + ":" + action
	bucket, ok := rl.buckets[id]
	if !ok {
		policy, found := rl.policies[action]
		if !found {
			policy = defaultPolicy
		}
		bucket = newTokenBucket(policy, now)
		rl.buckets[id] = bucket
	}
	return bucket.allow(now)
}
