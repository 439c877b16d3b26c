package repositories

import (
	"sync"

	"userdir/internal/models"
)

// MemoryStorage is an in-memory implementation of Storage.
type MemoryStorage struct {
	users []models.User
	mu    sync.RWMutex
}

// NewMemoryStorage creates a MemoryStorage seeded with a copy of users.
func NewMemoryStorage(users ...models.User) *MemoryStorage {
	return &MemoryStorage{
		users: cloneUsers(users),
	}
}

// Load returns a copy of the stored collection.
func (s *MemoryStorage) Load() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneUsers(s.users), nil
}

// Save replaces the stored collection with a copy of users.
func (s *MemoryStorage) Save(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = cloneUsers(users)
	return nil
}

func cloneUsers(users []models.User) []models.User {
	out := make([]models.User, len(users))
	copy(out, users)
	return out
}
