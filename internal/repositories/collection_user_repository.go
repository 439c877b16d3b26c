package repositories

import (
	"fmt"

	"userdir/internal/models"
)

// CollectionUserRepository implements UserRepository over a Storage that
// holds the whole collection. Each call loads the collection, works on it in
// memory and, for mutations, saves it back in full. Concurrent writers can
// lose updates.
type CollectionUserRepository struct {
	storage Storage
}

// NewCollectionUserRepository creates a repository over storage.
func NewCollectionUserRepository(storage Storage) *CollectionUserRepository {
	return &CollectionUserRepository{
		storage: storage,
	}
}

// List returns the slice at offset (page-1)*limit of length limit and the size
// of the whole collection. Pages past the end yield an empty slice.
func (r *CollectionUserRepository) List(page, limit int) ([]models.User, int, error) {
	users, err := r.storage.Load()
	if err != nil {
		return nil, 0, err
	}
	total := len(users)

	if page < 1 || limit < 1 {
		return []models.User{}, total, nil
	}
	// Compare pages, not offsets: (page-1)*limit overflows for huge pages.
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	if page > pages {
		return []models.User{}, total, nil
	}
	start := (page - 1) * limit
	end := min(start+limit, total)

	out := make([]models.User, end-start)
	copy(out, users[start:end])
	return out, total, nil
}

// GetByID scans the collection for id.
func (r *CollectionUserRepository) GetByID(id int) (*models.User, error) {
	users, err := r.storage.Load()
	if err != nil {
		return nil, err
	}
	idx := indexOf(users, id)
	if idx == -1 {
		return nil, notFound(id)
	}
	user := users[idx]
	return &user, nil
}

// Create assigns the next id (max existing + 1, or 1), appends the record and saves.
func (r *CollectionUserRepository) Create(user models.User) (*models.User, error) {
	users, err := r.storage.Load()
	if err != nil {
		return nil, err
	}
	user.ID = nextID(users)
	users = append(users, user)
	if err := r.storage.Save(users); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update merges patch onto the record with id and saves.
func (r *CollectionUserRepository) Update(id int, patch models.UserPatch) (*models.User, error) {
	users, err := r.storage.Load()
	if err != nil {
		return nil, err
	}
	idx := indexOf(users, id)
	if idx == -1 {
		return nil, notFound(id)
	}
	merged := patch.Apply(users[idx])
	users[idx] = merged
	if err := r.storage.Save(users); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes the record with id and saves.
func (r *CollectionUserRepository) Delete(id int) error {
	users, err := r.storage.Load()
	if err != nil {
		return err
	}
	idx := indexOf(users, id)
	if idx == -1 {
		return notFound(id)
	}
	users = append(users[:idx], users[idx+1:]...)
	return r.storage.Save(users)
}

func indexOf(users []models.User, id int) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

func nextID(users []models.User) int {
	maxID := 0
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}

func notFound(id int) error {
	return fmt.Errorf("user with ID %d not found: %w", id, ErrUserNotFound)
}
