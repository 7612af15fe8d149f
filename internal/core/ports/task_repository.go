package ports

import (
	"context"

	"github.com/taskvault/taskboard/internal/core/domain"
)

// TaskView is a task joined with its assignee's display name (nil when the
// task is unassigned or the assignee id matches no user).
type TaskView struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"project_id"`
	Title        string        `json:"title"`
	Status       domain.Status `json:"status"`
	AssigneeID   *string       `json:"assignee_id"`
	AssigneeName *string       `json:"assignee_name"`
	DueDate      *string       `json:"due_date"`
	Seq          int64         `json:"-"`
}

// TaskRepository defines the persistence interface for tasks. Each method is
// one atomic statement against the store; the filtering and ordering rules
// live in the task service, keeping the store a plain collaborator.
type TaskRepository interface {
	// Create inserts the task and fills in its store-assigned Seq.
	Create(ctx context.Context, t *domain.Task) error
	// FindByID returns the bare task row, or domain.ErrTaskNotFound.
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// FindViewByID returns the task joined with its assignee name.
	FindViewByID(ctx context.Context, id string) (*TaskView, error)
	// ListByProject returns every task in the project, joined with assignee
	// names, in insertion order.
	ListByProject(ctx context.Context, projectID string) ([]TaskView, error)
	// Update overwrites the mutable fields (title, status, assignee, due date).
	Update(ctx context.Context, t *domain.Task) error
	// Delete removes the task permanently, or returns domain.ErrTaskNotFound.
	Delete(ctx context.Context, id string) error
}
