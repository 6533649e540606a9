package service

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// lockRegistry serializes transitions per report request. Acquire is
// non-blocking: a second caller on a locked id is rejected instead of
// queued, so the user sees "operation already in progress" immediately.
type lockRegistry struct {
	mu       sync.Mutex
	inFlight map[snowflake.ID]struct{}
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{inFlight: make(map[snowflake.ID]struct{})}
}

func (r *lockRegistry) acquire(id snowflake.ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, held := r.inFlight[id]; held {
		return false
	}
	r.inFlight[id] = struct{}{}
	return true
}

func (r *lockRegistry) release(id snowflake.ID) {
	r.mu.Lock()
	delete(r.inFlight, id)
	r.mu.Unlock()
}
