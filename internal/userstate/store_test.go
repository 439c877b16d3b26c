package userstate_test

import (
	"errors"
	"testing"

	"userdir/internal/client"
	"userdir/internal/models"
	"userdir/internal/userstate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAPI is a mock implementation of userstate.API
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListUsers(page, limit int) (*models.UserPage, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPage), args.Error(1)
}

func (m *MockAPI) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAPI) UpdateUser(id int, patch models.UserPatch) (*models.User, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAPI) DeleteUser(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func ptr[T any](v T) *T { return &v }

func TestStore_FetchUsers(t *testing.T) {
	api := new(MockAPI)
	store := userstate.NewStore(api, 10)

	var seen []userstate.Status
	unsubscribe := store.Subscribe(func(s userstate.State) { seen = append(seen, s.Status) })
	defer unsubscribe()

	api.On("ListUsers", 1, 10).Return(&models.UserPage{Data: usersWithIDs(1, 2), Total: 23}, nil).Once()

	require.NoError(t, store.FetchUsers(1))
	s := store.State()
	assert.Equal(t, userstate.StatusSucceeded, s.Status)
	assert.Equal(t, 3, s.Pagination.TotalPages)
	assert.Equal(t, 23, s.Pagination.TotalItems)
	assert.Equal(t, []userstate.Status{userstate.StatusLoading, userstate.StatusSucceeded}, seen)
	api.AssertExpectations(t)
}

func TestStore_FetchUsersRecordsServerMessage(t *testing.T) {
	api := new(MockAPI)
	store := userstate.NewStore(api, 10)

	api.On("ListUsers", 1, 10).Return(nil, &client.APIError{StatusCode: 500, Message: "Could not retrieve users"}).Once()

	err := store.FetchUsers(1)
	assert.Error(t, err)
	s := store.State()
	assert.Equal(t, userstate.StatusFailed, s.Status)
	assert.Equal(t, "Could not retrieve users", s.Error)
}

func TestStore_FetchUsersRecordsTransportError(t *testing.T) {
	api := new(MockAPI)
	store := userstate.NewStore(api, 10)

	transportErr := &client.TransportError{Method: "GET", URL: "http://localhost:3000/users", Err: errors.New("connection refused")}
	api.On("ListUsers", 1, 10).Return(nil, transportErr).Once()

	_ = store.FetchUsers(1)
	assert.Equal(t, transportErr.Error(), store.State().Error)
}

func TestStore_CreateUpdateDelete(t *testing.T) {
	api := new(MockAPI)
	store := userstate.NewStore(api, 10)

	api.On("ListUsers", 1, 10).Return(&models.UserPage{Data: usersWithIDs(1, 2), Total: 2}, nil).Once()
	require.NoError(t, store.FetchUsers(1))

	req := models.CreateUserRequest{FirstName: "New", LastName: "User", Height: ptr(170.0), Weight: ptr(60.0), Gender: "male", Location: "X"}
	api.On("CreateUser", req).Return(&models.User{ID: 3, FirstName: "New"}, nil).Once()
	created, err := store.CreateUser(req)
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, []int{3, 1, 2}, ids(store.State().Users))
	assert.Equal(t, 3, store.State().Pagination.TotalItems)

	patch := models.UserPatch{Weight: ptr(75.0)}
	api.On("UpdateUser", 1, patch).Return(&models.User{ID: 1, FirstName: "user", Weight: 75}, nil).Once()
	_, err = store.UpdateUser(1, patch)
	require.NoError(t, err)
	assert.Equal(t, 75.0, store.State().Users[1].Weight)

	api.On("DeleteUser", 2).Return(nil).Once()
	require.NoError(t, store.DeleteUser(2))
	s := store.State()
	assert.Equal(t, []int{3, 1}, ids(s.Users))
	assert.Equal(t, 2, s.Pagination.TotalItems)
	assert.Equal(t, 1, s.Pagination.TotalPages)

	api.On("DeleteUser", 9).Return(&client.APIError{StatusCode: 404, Message: "User with ID 9 not found"}).Once()
	assert.Error(t, store.DeleteUser(9))
	s = store.State()
	assert.Equal(t, userstate.StatusFailed, s.Status)
	assert.Equal(t, "User with ID 9 not found", s.Error)
	assert.Equal(t, 2, s.Pagination.TotalItems)

	api.AssertExpectations(t)
}

func TestStore_GoToPageChecksBounds(t *testing.T) {
	api := new(MockAPI)
	store := userstate.NewStore(api, 10)

	api.On("ListUsers", 1, 10).Return(&models.UserPage{Data: usersWithIDs(1), Total: 15}, nil).Once()
	require.NoError(t, store.FetchUsers(1))

	ok, err := store.GoToPage(0)
	assert.False(t, ok)
	assert.NoError(t, err)

	ok, err = store.GoToPage(3)
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, 1, store.State().Pagination.CurrentPage)

	api.On("ListUsers", 2, 10).Return(&models.UserPage{Data: usersWithIDs(11), Total: 15}, nil).Once()
	ok, err = store.GoToPage(2)
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, 2, store.State().Pagination.CurrentPage)
	assert.Equal(t, []int{11}, ids(store.State().Users))
	api.AssertExpectations(t)
}

func TestStore_ResponsesApplyInArrivalOrder(t *testing.T) {
	store := userstate.NewStore(new(MockAPI), 10)

	// Page 2 was requested after page 1 but page 1 answers last; its data wins.
	store.Dispatch(userstate.FetchUsersPending{Page: 1})
	store.Dispatch(userstate.FetchUsersPending{Page: 2})
	store.Dispatch(userstate.FetchUsersFulfilled{Result: models.UserPage{Data: usersWithIDs(11), Total: 15}})
	store.Dispatch(userstate.FetchUsersFulfilled{Result: models.UserPage{Data: usersWithIDs(1), Total: 15}})

	assert.Equal(t, []int{1}, ids(store.State().Users))
}

func TestStore_StateIsASnapshot(t *testing.T) {
	store := userstate.NewStore(new(MockAPI), 10)
	store.Dispatch(userstate.FetchUsersFulfilled{Result: models.UserPage{Data: usersWithIDs(1), Total: 1}})

	s := store.State()
	s.Users[0].FirstName = "mutated"

	assert.Equal(t, "user", store.State().Users[0].FirstName)
}

func TestStore_Unsubscribe(t *testing.T) {
	store := userstate.NewStore(new(MockAPI), 10)
	calls := 0
	unsubscribe := store.Subscribe(func(userstate.State) { calls++ })

	store.SetCurrentPage(2)
	unsubscribe()
	store.SetCurrentPage(3)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, store.State().Pagination.CurrentPage)
}
