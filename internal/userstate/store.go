package userstate

import (
	"sync"

	"userdir/internal/client"
	"userdir/internal/models"

	"github.com/rs/zerolog/log"
)

// API is the remote collection the store synchronizes with.
// *client.Client implements it.
type API interface {
	ListUsers(page, limit int) (*models.UserPage, error)
	CreateUser(req models.CreateUserRequest) (*models.User, error)
	UpdateUser(id int, patch models.UserPatch) (*models.User, error)
	DeleteUser(id int) error
}

// Listener is notified with the new state after every dispatch.
type Listener func(State)

// Store owns the single State and is its only writer.
type Store struct {
	api API

	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

// NewStore creates a store in its initial state.
func NewStore(api API, itemsPerPage int) *Store {
	return &Store{
		api:       api,
		state:     InitialState(itemsPerPage),
		listeners: make(map[int]Listener),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Dispatch applies a to the current state, notifies listeners and returns the new state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state.clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	log.Debug().Str("action", a.Type()).Str("status", string(next.Status)).Msg("dispatched")
	for _, l := range listeners {
		l(next.clone())
	}
	return next
}

// SetCurrentPage moves the pagination cursor without any bounds check.
func (s *Store) SetCurrentPage(page int) {
	s.Dispatch(SetCurrentPage{Page: page})
}

// GoToPage moves to page and fetches it, but only when page lies within
// [1, TotalPages]. It reports whether the page was accepted.
func (s *Store) GoToPage(page int) (bool, error) {
	current := s.State().Pagination
	if page < 1 || page > current.TotalPages {
		return false, nil
	}
	s.SetCurrentPage(page)
	return true, s.FetchUsers(page)
}

// FetchUsers loads one page. Failures are recorded in the state and also returned.
func (s *Store) FetchUsers(page int) error {
	s.Dispatch(FetchUsersPending{Page: page})
	result, err := s.api.ListUsers(page, s.State().Pagination.ItemsPerPage)
	if err != nil {
		s.Dispatch(FetchUsersRejected{Error: client.Message(err)})
		return err
	}
	s.Dispatch(FetchUsersFulfilled{Result: *result})
	return nil
}

// CreateUser creates a user and prepends it to the current page.
func (s *Store) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	s.Dispatch(CreateUserPending{})
	user, err := s.api.CreateUser(req)
	if err != nil {
		s.Dispatch(CreateUserRejected{Error: client.Message(err)})
		return nil, err
	}
	s.Dispatch(CreateUserFulfilled{User: *user})
	return user, nil
}

// UpdateUser sends a partial update and replaces the local copy of the record.
func (s *Store) UpdateUser(id int, patch models.UserPatch) (*models.User, error) {
	s.Dispatch(UpdateUserPending{ID: id})
	user, err := s.api.UpdateUser(id, patch)
	if err != nil {
		s.Dispatch(UpdateUserRejected{ID: id, Error: client.Message(err)})
		return nil, err
	}
	s.Dispatch(UpdateUserFulfilled{User: *user})
	return user, nil
}

// DeleteUser deletes a user and drops it from the current page.
func (s *Store) DeleteUser(id int) error {
	s.Dispatch(DeleteUserPending{ID: id})
	if err := s.api.DeleteUser(id); err != nil {
		s.Dispatch(DeleteUserRejected{ID: id, Error: client.Message(err)})
		return err
	}
	s.Dispatch(DeleteUserFulfilled{ID: id})
	return nil
}
