package repository

import (
	"sync"

	"github.com/nurpe/freightops/internal/model"
)

type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]model.User
	order []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[string]model.User)}
}

func (r *UserRepository) Save(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		r.order = append(r.order, user.ID)
	}
	r.byID[user.ID] = user
}

func (r *UserRepository) Get(id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.byID[id].Email == email {
			return r.byID[id], nil
		}
	}
	return model.User{}, ErrNotFound
}

func (r *UserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *UserRepository) List() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
