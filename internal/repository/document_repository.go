package repository

import (
	"sync"

	"github.com/nurpe/freightops/internal/model"
)

type DocumentRepository struct {
	mu    sync.RWMutex
	byID  map[string]model.Document
	order []string
}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{byID: make(map[string]model.Document)}
}

func (r *DocumentRepository) Save(doc model.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[doc.ID]; !ok {
		r.order = append(r.order, doc.ID)
	}
	r.byID[doc.ID] = doc
}

func (r *DocumentRepository) Get(id string) (model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.byID[id]
	if !ok {
		return model.Document{}, ErrNotFound
	}
	return doc, nil
}

func (r *DocumentRepository) List() []model.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Document, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
