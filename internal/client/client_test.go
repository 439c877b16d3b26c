package client_test

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"userdir/internal/client"
	"userdir/internal/handlers"
	"userdir/internal/models"
	"userdir/internal/repositories"
	"userdir/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// startServer runs the user API on a loopback port and returns its base URL.
func startServer(t *testing.T, seed ...models.User) string {
	t.Helper()
	repo := repositories.NewCollectionUserRepository(repositories.NewMemoryStorage(seed...))
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handlers.NewUserHandler(services.NewUserService(repo, nil), 0).RegisterRoutes(app)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String()
}

func TestClient_CRUD(t *testing.T) {
	c := client.New(startServer(t))

	created, err := c.CreateUser(models.CreateUserRequest{
		FirstName: "Anna", LastName: "Ivanova", Height: ptr(170.0), Weight: ptr(60.0),
		Gender: "female", Location: "Kazan",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	page, err := c.ListUsers(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Data, 1)

	got, err := c.GetUser(1)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	updated, err := c.UpdateUser(1, models.UserPatch{Weight: ptr(75.0)})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.Weight)
	assert.Equal(t, 170.0, updated.Height)

	require.NoError(t, c.DeleteUser(1))

	_, err = c.GetUser(1)
	assert.True(t, client.IsNotFound(err))
	assert.Equal(t, "User with ID 1 not found", client.Message(err))
}

func TestClient_ListPastTheEnd(t *testing.T) {
	seed := make([]models.User, 0, 3)
	for i := 1; i <= 3; i++ {
		seed = append(seed, models.User{ID: i, FirstName: fmt.Sprint("u", i)})
	}
	c := client.New(startServer(t, seed...))

	page, err := c.ListUsers(99, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestClient_ValidationErrorMessage(t *testing.T) {
	c := client.New(startServer(t, models.User{ID: 1, Height: 180, Weight: 70}))

	_, err := c.UpdateUser(1, models.UserPatch{Height: ptr(20.0)})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Validation failed", client.Message(err))
}

func TestClient_TransportError(t *testing.T) {
	// Grab a free port and close it so nothing is listening.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := client.New("http://" + addr)
	_, err = c.ListUsers(1, 10)

	var transportErr *client.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, err.Error(), client.Message(err))
}

func TestClient_MessageFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/1":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("upstream exploded"))
		case "/users/2":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":["height must not be less than 100","weight must be a number"]}`))
		}
	}))
	defer srv.Close()
	c := client.New(srv.URL)

	_, err := c.GetUser(1)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "request failed with status code 500", client.Message(err))

	_, err = c.GetUser(2)
	assert.Equal(t, "height must not be less than 100; weight must be a number", client.Message(err))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", client.Message(nil))
	assert.Equal(t, "plain", client.Message(errors.New("plain")))
	wrapped := fmt.Errorf("wrapped: %w", &client.APIError{StatusCode: 404, Message: "gone"})
	assert.Equal(t, "gone", client.Message(wrapped))
}
