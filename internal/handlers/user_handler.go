package handlers

import (
	"fmt"
	"strconv"

	"userdir/internal/models"
	"userdir/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service      *services.UserService
	defaultLimit int
}

// NewUserHandler creates a new UserHandler. pageSize is the limit used when a
// list request has none; values below 1 fall back to 10.
func NewUserHandler(service *services.UserService, pageSize int) *UserHandler {
	if pageSize < 1 {
		pageSize = defaultLimit
	}
	return &UserHandler{
		service:      service,
		defaultLimit: pageSize,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/", h.HandleListUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleListUsers returns one page of users plus the total count.
// page and limit are not bounds checked; a page past the end yields an empty list.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", defaultPage)
	limit := c.QueryInt("limit", h.defaultLimit)

	result, err := h.service.ListUsers(page, limit)
	if err != nil {
		log.Error().Err(err).Int("page", page).Int("limit", limit).Msg("failed to list users")
		return respondError(c, statusFor(err), "Could not retrieve users", err)
	}
	return c.JSON(result)
}

// HandleGetUserByID retrieves a single user by its ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	user, err := h.service.GetUserByID(id)
	if err != nil {
		return h.failWithID(c, err, id, "Could not retrieve user")
	}
	return c.JSON(user)
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn().Err(err).Msg("failed to parse create user body")
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	created, err := h.service.CreateUser(req)
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusBadRequest {
			return respondError(c, status, "Validation failed", err)
		}
		log.Error().Err(err).Msg("failed to create user")
		return respondError(c, status, "Could not create user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateUser merges the supplied fields onto an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	var patch models.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Warn().Err(err).Int("user_id", id).Msg("failed to parse update user body")
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	updated, err := h.service.UpdateUser(id, patch)
	if err != nil {
		if statusFor(err) == fiber.StatusBadRequest {
			return respondError(c, fiber.StatusBadRequest, "Validation failed", err)
		}
		return h.failWithID(c, err, id, "Could not update user")
	}
	return c.JSON(updated)
}

// HandleDeleteUser deletes a user and answers with an empty 200.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	if err := h.service.DeleteUser(id); err != nil {
		return h.failWithID(c, err, id, "Could not delete user")
	}
	return c.Status(fiber.StatusOK).Send(nil)
}

func (h *UserHandler) failWithID(c *fiber.Ctx, err error, id int, fallback string) error {
	status := statusFor(err)
	if status == fiber.StatusNotFound {
		return respondError(c, status, fmt.Sprintf("User with ID %d not found", id), nil)
	}
	log.Error().Err(err).Int("user_id", id).Msg(fallback)
	return respondError(c, status, fallback, err)
}

// parseID reads the :id route parameter. When it is malformed the 400 response
// has already been written and ok is false.
func parseID(c *fiber.Ctx) (id int, ok bool, err error) {
	raw := c.Params("id")
	id, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, false, respondError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid user ID %q", raw), convErr)
	}
	return id, true, nil
}
