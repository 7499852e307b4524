package middleware

import (
	"sync"
	"time"
)

// ==================== KeyedLimiter ====================

// KeyedLimiter enforces a cooldown per key: after an allowed call the same
// key is refused until interval has passed. Safe for concurrent use.
type KeyedLimiter struct {
	locks sync.Map // key -> *lockEntry
	now   func() time.Time
}

type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

func NewKeyedLimiter() *KeyedLimiter {
	return &KeyedLimiter{now: time.Now}
}

// CheckResult outcome of a limiter check
type CheckResult struct {
	Allowed    bool
	RetryAfter time.Duration // remaining cooldown when refused
}

// Check reports whether key may run now and, if so, starts its cooldown.
func (r *KeyedLimiter) Check(key string, interval time.Duration) CheckResult {
	entry := r.lockKey(key)
	defer entry.mu.Unlock()

	now := r.now()
	elapsed := now.Sub(entry.lastTime)
	if !entry.lastTime.IsZero() && elapsed < interval {
		return CheckResult{Allowed: false, RetryAfter: interval - elapsed}
	}

	entry.lastTime = now
	return CheckResult{Allowed: true}
}

// lockKey returns the locked entry currently stored for key. An entry swept
// between the load and the lock is stale, so the lookup is retried.
func (r *KeyedLimiter) lockKey(key string) *lockEntry {
	for {
		actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
		entry := actual.(*lockEntry)
		entry.mu.Lock()
		if cur, ok := r.locks.Load(key); ok && cur == actual {
			return entry
		}
		entry.mu.Unlock()
	}
}

// Reset clears the cooldown for key, e.g. after the guarded call failed.
func (r *KeyedLimiter) Reset(key string) {
	r.locks.Delete(key)
}

// Sweep drops entries idle for longer than maxAge so the map does not grow
// with every distinct key ever seen. Entries not yet stamped by Check are
// kept.
func (r *KeyedLimiter) Sweep(maxAge time.Duration) int {
	cutoff := r.now().Add(-maxAge)
	removed := 0
	r.locks.Range(func(k, v interface{}) bool {
		entry := v.(*lockEntry)
		entry.mu.Lock()
		defer entry.mu.Unlock()
		if entry.lastTime.IsZero() || !entry.lastTime.Before(cutoff) {
			return true
		}
		if r.locks.CompareAndDelete(k, v) {
			removed++
		}
		return true
	})
	return removed
}
