package seed

import "sync"

// IdentityRegistry is a thread-safe, append-only store of database-assigned
// user ids. Writers are mutually exclusive with readers and each other;
// readers may proceed concurrently. The provisioner is the only writer
// today, but the registry does not assume single-writer.
type IdentityRegistry struct {
	mu  sync.RWMutex
	ids []int64
}

// NewIdentityRegistry creates an empty registry.
func NewIdentityRegistry() *IdentityRegistry {
	return &IdentityRegistry{}
}

// Add appends one id. Safe to call concurrently with other Add and
// Snapshot calls.
func (r *IdentityRegistry) Add(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

// Len reports how many ids have been recorded so far.
func (r *IdentityRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}

// Snapshot returns an independent copy of all ids accumulated so far.
// The copy never aliases the live slice, so callers may use it without
// further synchronization.
func (r *IdentityRegistry) Snapshot() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, len(r.ids))
	copy(ids, r.ids)
	return ids
}
