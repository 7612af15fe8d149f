package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskvault/taskboard/internal/core/domain"
	"github.com/taskvault/taskboard/internal/core/ports"
)

// TaskRepository is the PostgreSQL-backed task store. Every method is a
// single statement; list filtering and ordering happen in the task service.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// Create inserts the task and reads back its store-assigned seq.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		INSERT INTO tasks (id, project_id, title, status, assignee_id, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq
	`

	err := r.pool.QueryRow(ctx, query, t.ID, t.ProjectID, t.Title, t.Status, t.AssigneeID, t.DueDate).Scan(&t.Seq)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// FindByID returns the bare task row.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		SELECT id, project_id, title, status, assignee_id, due_date, seq
		FROM tasks
		WHERE id = $1
	`

	var t domain.Task
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.ProjectID, &t.Title, &t.Status, &t.AssigneeID, &t.DueDate, &t.Seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &t, nil
}

// FindViewByID returns the task joined with its assignee's display name.
func (r *TaskRepository) FindViewByID(ctx context.Context, id string) (*ports.TaskView, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		SELECT t.id, t.project_id, t.title, t.status, t.assignee_id, u.name, t.due_date, t.seq
		FROM tasks t
		LEFT JOIN users u ON u.id = t.assignee_id
		WHERE t.id = $1
	`

	var v ports.TaskView
	err := r.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.ProjectID, &v.Title, &v.Status, &v.AssigneeID, &v.AssigneeName, &v.DueDate, &v.Seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task view: %w", err)
	}
	return &v, nil
}

// ListByProject returns every task in the project in insertion order, joined
// with assignee names.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]ports.TaskView, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		SELECT t.id, t.project_id, t.title, t.status, t.assignee_id, u.name, t.due_date, t.seq
		FROM tasks t
		LEFT JOIN users u ON u.id = t.assignee_id
		WHERE t.project_id = $1
		ORDER BY t.seq
	`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var views []ports.TaskView
	for rows.Next() {
		var v ports.TaskView
		if err := rows.Scan(&v.ID, &v.ProjectID, &v.Title, &v.Status, &v.AssigneeID, &v.AssigneeName, &v.DueDate, &v.Seq); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// Update overwrites the mutable task fields. Last writer wins: there is no
// version column and no conflict detection.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		UPDATE tasks
		SET title = $1, status = $2, assignee_id = $3, due_date = $4
		WHERE id = $5
	`

	tag, err := r.pool.Exec(ctx, query, t.Title, t.Status, t.AssigneeID, t.DueDate, t.ID)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete removes the task row.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
