package repositories

import (
	"errors"
	"fmt"

	"userdir/internal/models"
)

// Storage loads and saves the whole user collection.
// Implementations may be a flat file, an embedded database or plain memory;
// the CRUD operations in CollectionUserRepository do not depend on which.
type Storage interface {
	Load() ([]models.User, error)
	Save(users []models.User) error
}

// ErrStorage marks failures of the backing storage: unreadable files,
// malformed JSON, failed writes or database errors.
var ErrStorage = errors.New("storage failure")

// StorageError wraps the underlying cause of a storage failure.
type StorageError struct {
	Op    string
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Cause)
}

func (e *StorageError) Is(target error) bool { return target == ErrStorage }
func (e *StorageError) Unwrap() error        { return e.Cause }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Cause: err}
}
