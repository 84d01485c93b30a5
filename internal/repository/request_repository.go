// Package repository provides the in-memory stores backing the core.
// Stores preserve insertion order so listings stay stable, and guard
// their state with a mutex so a composition root may share them.
package repository

import (
	"errors"
	"sync"

	"github.com/nurpe/freightops/internal/model"
)

var ErrNotFound = errors.New("record not found")

type RequestRepository struct {
	mu    sync.RWMutex
	byID  map[string]model.TransportRequest
	order []string
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{byID: make(map[string]model.TransportRequest)}
}

func (r *RequestRepository) Save(req model.TransportRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[req.ID]; !ok {
		r.order = append(r.order, req.ID)
	}
	r.byID[req.ID] = req
}

func (r *RequestRepository) Get(id string) (model.TransportRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.byID[id]
	if !ok {
		return model.TransportRequest{}, ErrNotFound
	}
	return req, nil
}

// List returns every request in insertion order.
func (r *RequestRepository) List() []model.TransportRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.TransportRequest, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
