package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/taskvault/taskboard/internal/core/domain"
	"github.com/taskvault/taskboard/internal/core/ports"
)

// TaskService implements the task lifecycle: role-gated mutation, field-level
// patch semantics and the visible/filterable task list.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// Create persists a new task in status TODO. Only ADMIN and MANAGER may
// create tasks. The title must be non-blank after trimming; assignee and due
// date are stored verbatim with no existence check on either the project or
// the assignee.
func (s *TaskService) Create(ctx context.Context, caller domain.Caller, in ports.CreateTaskInput) (*ports.TaskView, error) {
	if !caller.Role.CanManageTasks() {
		return nil, fmt.Errorf("%w: only ADMIN or MANAGER can create tasks", domain.ErrForbidden)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title required", domain.ErrValidation)
	}

	task := &domain.Task{
		ID:         domain.NewID(),
		ProjectID:  in.ProjectID,
		Title:      title,
		Status:     domain.StatusTodo,
		AssigneeID: normalize(in.AssigneeID),
		DueDate:    normalize(in.DueDate),
	}
	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("project_id", task.ProjectID).
		Str("role", string(caller.Role)).
		Msg("task created")

	return s.repo.FindViewByID(ctx, task.ID)
}

// List returns the tasks of a project, filtered and ordered. An unknown
// status filter is silently ignored; a non-blank query restricts to titles
// containing it as a case-sensitive substring. There is no role-based row
// filtering. Ordering: tasks with a due date first, ascending by date, then
// tasks without one; ties break by most recently created first.
func (s *TaskService) List(ctx context.Context, caller domain.Caller, in ports.ListTasksInput) ([]ports.TaskView, error) {
	views, err := s.repo.ListByProject(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	status, statusOK := domain.ParseStatus(in.Status)
	query := strings.TrimSpace(in.Query)

	filtered := views[:0]
	for _, v := range views {
		if statusOK && v.Status != status {
			continue
		}
		if query != "" && !strings.Contains(v.Title, query) {
			continue
		}
		filtered = append(filtered, v)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return a.Seq > b.Seq
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case *a.DueDate != *b.DueDate:
			// ISO dates: lexicographic order is chronological order.
			return *a.DueDate < *b.DueDate
		default:
			return a.Seq > b.Seq
		}
	})

	return filtered, nil
}

// Update applies a partial update to a task. The task must exist; a WORKER
// may only update the task currently assigned to them, judged before the
// patch is applied, so reassigning a task away from oneself in the same call
// is allowed. Field semantics are documented on ports.TaskPatch.
func (s *TaskService) Update(ctx context.Context, caller domain.Caller, taskID string, patch ports.TaskPatch) (*ports.TaskView, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !caller.CanUpdateTask(task) {
		return nil, fmt.Errorf("%w: workers can update only their own tasks", domain.ErrForbidden)
	}

	if title := strings.TrimSpace(patch.Title.Value); patch.Title.Set && title != "" {
		task.Title = title
	}
	if status, ok := domain.ParseStatus(patch.Status.Value); patch.Status.Set && ok {
		task.Status = status
	}
	if patch.AssigneeID.Set {
		task.AssigneeID = patch.AssigneeID.Ptr()
	}
	if patch.DueDate.Set {
		task.DueDate = patch.DueDate.Ptr()
	}

	if err := s.repo.Update(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("task_id", taskID).Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().Str("task_id", taskID).Str("role", string(caller.Role)).Msg("task updated")
	return s.repo.FindViewByID(ctx, taskID)
}

// Delete removes a task permanently. Only ADMIN and MANAGER may delete; the
// permission check runs before the existence check.
func (s *TaskService) Delete(ctx context.Context, caller domain.Caller, taskID string) error {
	if !caller.Role.CanManageTasks() {
		return fmt.Errorf("%w: only ADMIN or MANAGER can delete tasks", domain.ErrForbidden)
	}

	if _, err := s.repo.FindByID(ctx, taskID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, taskID); err != nil {
		s.logger.Error().Err(err).Str("task_id", taskID).Msg("failed to delete task")
		return err
	}

	s.logger.Info().Str("task_id", taskID).Str("role", string(caller.Role)).Msg("task deleted")
	return nil
}

// normalize collapses a pointer to an empty string into nil so optional
// fields persist as null rather than "".
func normalize(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}
