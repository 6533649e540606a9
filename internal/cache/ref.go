package cache

import (
	"sync"
	"time"
)

// Ref holds one cached snapshot of slow-changing reference data, guarded by
// a TTL. Concurrent readers are cheap; a stale snapshot reads as a miss and
// is cleared.
type Ref[V any] struct {
	mu        sync.RWMutex
	value     V
	ok        bool
	expiresAt time.Time
}

func NewRef[V any]() *Ref[V] {
	return &Ref[V]{}
}

// Get returns the cached snapshot if it exists and has not expired.
func (r *Ref[V]) Get() (V, bool) {
	var zero V
	if r == nil {
		return zero, false
	}
	r.mu.RLock()
	value, ok, expiresAt := r.value, r.ok, r.expiresAt
	r.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if !expiresAt.IsZero() && time.Now().After(expiresAt) {
		r.Invalidate()
		return zero, false
	}
	return value, true
}

// Set replaces the snapshot. A zero ttl keeps it until invalidated.
func (r *Ref[V]) Set(value V, ttl time.Duration) {
	if r == nil {
		return
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	r.mu.Lock()
	r.value = value
	r.ok = true
	r.expiresAt = expiresAt
	r.mu.Unlock()
}

// Invalidate drops the snapshot so the next Get misses.
func (r *Ref[V]) Invalidate() {
	if r == nil {
		return
	}
	var zero V
	r.mu.Lock()
	r.value = zero
	r.ok = false
	r.expiresAt = time.Time{}
	r.mu.Unlock()
}
