package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/taskboard/internal/api/metrics"
	"github.com/taskvault/taskboard/internal/core/domain"
	"github.com/taskvault/taskboard/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type createTaskRequest struct {
	Title      string  `json:"title"`
	AssigneeID *string `json:"assigneeId"`
	DueDate    *string `json:"dueDate"`
}

// updateTaskRequest is a partial update: every field records whether its key
// was present in the payload at all, so "absent" and "present but empty" stay
// distinguishable through JSON decoding.
type updateTaskRequest struct {
	Title      domain.Optional `json:"title"`
	Status     domain.Optional `json:"status"`
	AssigneeID domain.Optional `json:"assigneeId"`
	DueDate    domain.Optional `json:"dueDate"`
}

type deleteTaskResponse struct {
	OK bool `json:"ok"`
}

// List handles GET /api/projects/:projectId/tasks.
//
// @Summary      List a project's tasks, filtered and sorted
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true   "Project id"
// @Param        status     query     string  false  "Status filter (TODO, IN_PROGRESS, DONE); unknown values are ignored"
// @Param        q          query     string  false  "Case-sensitive title substring"
// @Success      200        {array}   ports.TaskView
// @Failure      401        {object}  map[string]string
// @Router       /api/projects/{projectId}/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), caller, ports.ListTasksInput{
		ProjectID: c.Param("projectId"),
		Status:    c.QueryParam("status"),
		Query:     c.QueryParam("q"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create handles POST /api/projects/:projectId/tasks.
//
// @Summary      Create a task (ADMIN or MANAGER)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string             true  "Project id"
// @Param        body       body      createTaskRequest  true  "Task details"
// @Success      201        {object}  ports.TaskView
// @Failure      400        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Router       /api/projects/{projectId}/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	task, err := h.service.Create(c.Request().Context(), caller, ports.CreateTaskInput{
		ProjectID:  c.Param("projectId"),
		Title:      req.Title,
		AssigneeID: req.AssigneeID,
		DueDate:    req.DueDate,
	})
	if err != nil {
		return err
	}
	metrics.TasksCreatedTotal.WithLabelValues(string(caller.Role)).Inc()

	return c.JSON(http.StatusCreated, task)
}

// Update handles PATCH /api/tasks/:id.
//
// @Summary      Partially update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change; omitted fields are untouched"
// @Success      200   {object}  ports.TaskView
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/tasks/{id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	task, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.TaskPatch{
		Title:      req.Title,
		Status:     req.Status,
		AssigneeID: req.AssigneeID,
		DueDate:    req.DueDate,
	})
	if err != nil {
		return err
	}
	metrics.TasksUpdatedTotal.WithLabelValues(string(caller.Role)).Inc()

	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/:id.
//
// @Summary      Delete a task (ADMIN or MANAGER)
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Task id"
// @Success      200  {object}  deleteTaskResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	metrics.TasksDeletedTotal.WithLabelValues(string(caller.Role)).Inc()

	return c.JSON(http.StatusOK, deleteTaskResponse{OK: true})
}
