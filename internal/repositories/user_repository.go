package repositories

import (
	"errors"

	"userdir/internal/models"
)

// ErrUserNotFound is returned when no record carries the requested id.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	List(page, limit int) ([]models.User, int, error)
	GetByID(id int) (*models.User, error)
	Create(user models.User) (*models.User, error)
	Update(id int, patch models.UserPatch) (*models.User, error)
	Delete(id int) error
}
