package ports

import (
	"context"

	"github.com/taskvault/taskboard/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task. AssigneeID and
// DueDate are optional; nil (or empty) means unassigned / no due date. Neither
// is checked against existing rows.
type CreateTaskInput struct {
	ProjectID  string
	Title      string
	AssigneeID *string
	DueDate    *string
}

// ListTasksInput carries the list filters. An unknown Status value is
// silently ignored; a blank Query (after trimming) applies no title filter.
type ListTasksInput struct {
	ProjectID string
	Status    string
	Query     string
}

// TaskPatch is a partial task update. Each field independently records
// whether it was present in the request at all:
//   - Title: applied only when present and non-blank after trimming.
//   - Status: applied only when present and a valid status value.
//   - AssigneeID / DueDate: present-with-empty clears the field to null,
//     absent leaves it untouched.
type TaskPatch struct {
	Title      domain.Optional
	Status     domain.Optional
	AssigneeID domain.Optional
	DueDate    domain.Optional
}

// TaskService defines use-case operations for tasks, including every
// role-based permission rule.
type TaskService interface {
	Create(ctx context.Context, caller domain.Caller, in CreateTaskInput) (*TaskView, error)
	List(ctx context.Context, caller domain.Caller, in ListTasksInput) ([]TaskView, error)
	Update(ctx context.Context, caller domain.Caller, taskID string, patch TaskPatch) (*TaskView, error)
	Delete(ctx context.Context, caller domain.Caller, taskID string) error
}
