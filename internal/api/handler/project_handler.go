package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/taskboard/internal/api/metrics"
	"github.com/taskvault/taskboard/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/projects.
//
// @Summary      List all projects, ordered by name
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Failure      401  {object}  map[string]string
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Create handles POST /api/projects.
//
// @Summary      Create a project (ADMIN only)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project name"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.service.Create(c.Request().Context(), caller, req.Name)
	if err != nil {
		return err
	}
	metrics.ProjectsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, project)
}
