// Package userstate mirrors the remote user collection on the client side.
//
// A Store holds one State and changes it only through Reduce, one action at a
// time. The asynchronous operations (fetch, create, update, delete) dispatch a
// pending action, perform one request and dispatch a fulfilled or rejected
// action with the outcome. Responses are applied in the order they arrive;
// there is no request sequencing, deduplication or cancellation.
package userstate

import "userdir/internal/models"

// Status is the state of the most recent request.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// DefaultItemsPerPage matches the server's default page size.
const DefaultItemsPerPage = 10

// Pagination is the client's cursor into the collection.
type Pagination struct {
	CurrentPage  int `json:"currentPage" yaml:"currentPage"`
	TotalPages   int `json:"totalPages" yaml:"totalPages"`
	TotalItems   int `json:"totalItems" yaml:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage" yaml:"itemsPerPage"`
}

// State is the client-side mirror of the current page of users.
type State struct {
	Users      []models.User `json:"users" yaml:"users"`
	Status     Status        `json:"status" yaml:"status"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty"`
	Pagination Pagination    `json:"pagination" yaml:"pagination"`
}

// InitialState returns the state before any request was made.
func InitialState(itemsPerPage int) State {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	return State{
		Users:  []models.User{},
		Status: StatusIdle,
		Pagination: Pagination{
			CurrentPage:  1,
			TotalPages:   1,
			TotalItems:   0,
			ItemsPerPage: itemsPerPage,
		},
	}
}

// TotalPages returns ceil(totalItems / itemsPerPage).
func TotalPages(totalItems, itemsPerPage int) int {
	if itemsPerPage < 1 || totalItems < 1 {
		return 0
	}
	return (totalItems + itemsPerPage - 1) / itemsPerPage
}

func (s State) clone() State {
	users := make([]models.User, len(s.Users))
	copy(users, s.Users)
	s.Users = users
	return s
}
