package services

import (
	"fmt"
	"time"

	"userdir/internal/models"
	"userdir/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// UserService handles business logic related to users.
type UserService struct {
	repo      repositories.UserRepository
	publisher EventPublisher // optional
	validate  *validator.Validate
	now       func() time.Time
}

// NewUserService creates a new UserService. publisher may be nil, in which
// case no events are emitted.
func NewUserService(repo repositories.UserRepository, publisher EventPublisher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
		validate:  newValidator(),
		now:       time.Now,
	}
}

// ListUsers returns one page of users and the size of the whole collection.
func (s *UserService) ListUsers(page, limit int) (*models.UserPage, error) {
	users, total, err := s.repo.List(page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &models.UserPage{Data: users, Total: total}, nil
}

// GetUserByID retrieves a single user by its ID.
func (s *UserService) GetUserByID(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

// CreateUser validates the request and stores a new user.
func (s *UserService) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, translate(err)
	}

	user, err := s.repo.Create(req.ToUser())
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.publish(EventUserCreated, user.ID, user)
	return user, nil
}

// UpdateUser validates the patch and merges it onto the user with id.
func (s *UserService) UpdateUser(id int, patch models.UserPatch) (*models.User, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, translate(err)
	}

	user, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}

	s.publish(EventUserUpdated, user.ID, user)
	return user, nil
}

// DeleteUser deletes a user by its ID.
func (s *UserService) DeleteUser(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	s.publish(EventUserDeleted, id, nil)
	return nil
}

// publish is best effort: a failed publication never fails the request.
func (s *UserService) publish(eventType string, id int, user *models.User) {
	if s.publisher == nil {
		return
	}
	event := UserEvent{
		Type:       eventType,
		UserID:     id,
		User:       user,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.PublishUserEvent(event); err != nil {
		log.Warn().Err(err).Str("event", eventType).Int("user_id", id).Msg("failed to publish user event")
		return
	}
	log.Debug().Str("event", eventType).Int("user_id", id).Msg("published user event")
}
