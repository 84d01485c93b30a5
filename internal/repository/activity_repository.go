package repository

import (
	"sync"

	"github.com/nurpe/freightops/internal/model"
)

// ActivityRepository is append-only: entries are never updated or removed.
type ActivityRepository struct {
	mu      sync.RWMutex
	entries []model.ActivityEntry
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Append(entry model.ActivityEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

// List returns entries in the order they were recorded.
func (r *ActivityRepository) List() []model.ActivityEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.ActivityEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
