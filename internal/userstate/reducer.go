package userstate

import "userdir/internal/models"

// Reduce returns the state that results from applying a to s. It never
// modifies s. Unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case FetchUsersPending:
		s.Status = StatusLoading
		s.Error = ""

	case FetchUsersFulfilled:
		s.Status = StatusSucceeded
		s.Error = ""
		s.Users = cloneUsers(a.Result.Data)
		s.Pagination.TotalItems = a.Result.Total
		s.Pagination.TotalPages = TotalPages(a.Result.Total, s.Pagination.ItemsPerPage)

	case FetchUsersRejected:
		s.Status = StatusFailed
		s.Error = a.Error

	case CreateUserPending:
		s.Status = StatusLoading
		s.Error = ""

	case CreateUserFulfilled:
		// The new record is shown on the current page until the next fetch;
		// TotalPages is left alone.
		s.Status = StatusSucceeded
		s.Error = ""
		users := make([]models.User, 0, len(s.Users)+1)
		users = append(users, a.User)
		s.Users = append(users, s.Users...)
		s.Pagination.TotalItems++

	case CreateUserRejected:
		s.Status = StatusFailed
		s.Error = a.Error

	case UpdateUserPending, DeleteUserPending:
		// Inline edits and deletes keep the list on screen.

	case UpdateUserFulfilled:
		s.Status = StatusSucceeded
		s.Error = ""
		for i := range s.Users {
			if s.Users[i].ID == a.User.ID {
				s.Users = cloneUsers(s.Users)
				s.Users[i] = a.User
				break
			}
		}

	case UpdateUserRejected:
		s.Status = StatusFailed
		s.Error = a.Error

	case DeleteUserFulfilled:
		s.Status = StatusSucceeded
		s.Error = ""
		users := make([]models.User, 0, len(s.Users))
		for _, u := range s.Users {
			if u.ID != a.ID {
				users = append(users, u)
			}
		}
		s.Users = users
		if s.Pagination.TotalItems > 0 {
			s.Pagination.TotalItems--
		}
		s.Pagination.TotalPages = TotalPages(s.Pagination.TotalItems, s.Pagination.ItemsPerPage)

	case DeleteUserRejected:
		s.Status = StatusFailed
		s.Error = a.Error

	case SetCurrentPage:
		s.Pagination.CurrentPage = a.Page
	}
	return s
}

func cloneUsers(users []models.User) []models.User {
	out := make([]models.User, len(users))
	copy(out, users)
	return out
}
