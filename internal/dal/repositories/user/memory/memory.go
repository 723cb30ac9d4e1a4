package memoryrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/user"
)

// MemoryUserRepository is an in-memory user repository for tests and local
// development.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	seq   int64
	users map[int64]user.User
}

// NewMemoryUserRepository creates a new in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]user.User),
	}
}

// Insert stores the user and returns it with the assigned ID.
func (r *MemoryUserRepository) Insert(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	u.ID = r.seq
	r.users[u.ID] = u

	return u, nil
}

// Get returns the user or user.ErrUserNotFound.
func (r *MemoryUserRepository) Get(_ context.Context, id int64) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}

	return u, nil
}

// List returns all users ordered by ID.
func (r *MemoryUserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, u)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Update overwrites an existing user or returns user.ErrUserNotFound.
func (r *MemoryUserRepository) Update(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[u.ID]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}

	u.CreatedAt = current.CreatedAt
	r.users[u.ID] = u

	return u, nil
}

// Delete removes a user or returns user.ErrUserNotFound.
func (r *MemoryUserRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}
