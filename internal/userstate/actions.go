package userstate

import "userdir/internal/models"

// Action is a state transition request handled by Reduce.
type Action interface {
	Type() string
}

type (
	FetchUsersPending struct{ Page int }
	// FetchUsersFulfilled carries the page returned by the server.
	FetchUsersFulfilled struct{ Result models.UserPage }
	FetchUsersRejected  struct{ Error string }

	CreateUserPending   struct{}
	CreateUserFulfilled struct{ User models.User }
	CreateUserRejected  struct{ Error string }

	UpdateUserPending   struct{ ID int }
	UpdateUserFulfilled struct{ User models.User }
	UpdateUserRejected  struct {
		ID    int
		Error string
	}

	DeleteUserPending   struct{ ID int }
	DeleteUserFulfilled struct{ ID int }
	DeleteUserRejected  struct {
		ID    int
		Error string
	}

	// SetCurrentPage moves the cursor without any bounds check.
	SetCurrentPage struct{ Page int }
)

func (FetchUsersPending) Type() string   { return "users/fetchUsers/pending" }
func (FetchUsersFulfilled) Type() string { return "users/fetchUsers/fulfilled" }
func (FetchUsersRejected) Type() string  { return "users/fetchUsers/rejected" }

func (CreateUserPending) Type() string   { return "users/createUser/pending" }
func (CreateUserFulfilled) Type() string { return "users/createUser/fulfilled" }
func (CreateUserRejected) Type() string  { return "users/createUser/rejected" }

func (UpdateUserPending) Type() string   { return "users/updateUser/pending" }
func (UpdateUserFulfilled) Type() string { return "users/updateUser/fulfilled" }
func (UpdateUserRejected) Type() string  { return "users/updateUser/rejected" }

func (DeleteUserPending) Type() string   { return "users/deleteUser/pending" }
func (DeleteUserFulfilled) Type() string { return "users/deleteUser/fulfilled" }
func (DeleteUserRejected) Type() string  { return "users/deleteUser/rejected" }

func (SetCurrentPage) Type() string { return "users/setCurrentPage" }
