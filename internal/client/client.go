package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"userdir/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Client talks to the users resource of the server over HTTP.
// Requests have no timeout and are not retried.
type Client struct {
	baseURL string
	http    *fiber.Client
}

// New creates a Client for the server at baseURL, e.g. "http://localhost:3000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fiber.Client{},
	}
}

// ListUsers fetches one page of users.
func (c *Client) ListUsers(page, limit int) (*models.UserPage, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("limit", fmt.Sprint(limit))

	var out models.UserPage
	if err := c.do(fiber.MethodGet, "/users?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = []models.User{}
	}
	return &out, nil
}

// GetUser fetches a single user.
func (c *Client) GetUser(id int) (*models.User, error) {
	var out models.User
	if err := c.do(fiber.MethodGet, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser creates a user and returns it with its assigned id.
func (c *Client) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	var out models.User
	if err := c.do(fiber.MethodPost, "/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser sends a partial update and returns the merged record.
func (c *Client) UpdateUser(id int, patch models.UserPatch) (*models.User, error) {
	var out models.User
	if err := c.do(fiber.MethodPut, fmt.Sprintf("/users/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser deletes a user.
func (c *Client) DeleteUser(id int) error {
	return c.do(fiber.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

func (c *Client) do(method, path string, body, out any) error {
	target := c.baseURL + path

	var agent *fiber.Agent
	switch method {
	case fiber.MethodGet:
		agent = c.http.Get(target)
	case fiber.MethodPost:
		agent = c.http.Post(target)
	case fiber.MethodPut:
		agent = c.http.Put(target)
	case fiber.MethodDelete:
		agent = c.http.Delete(target)
	default:
		return fmt.Errorf("unsupported method %s", method)
	}
	if body != nil {
		agent.JSON(body)
	}

	status, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return &TransportError{Method: method, URL: target, Err: errors.Join(errs...)}
	}
	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		return newAPIError(status, respBody)
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
