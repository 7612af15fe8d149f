package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/taskboard/internal/core/ports"
)

// UserHandler exposes the read-only user directory.
type UserHandler struct {
	directory ports.DirectoryService
}

func NewUserHandler(directory ports.DirectoryService) *UserHandler {
	return &UserHandler{directory: directory}
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// List handles GET /api/users.
//
// @Summary      List all users, ordered by role then name
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	if _, err := ctxCaller(c); err != nil {
		return err
	}

	users, err := h.directory.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  string(u.Role),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
