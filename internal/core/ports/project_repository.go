package ports

import (
	"context"

	"github.com/taskvault/taskboard/internal/core/domain"
)

// ProjectRepository defines the persistence interface for projects.
// There is no update or delete: projects are permanent once created.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	// List returns all projects ordered by name.
	List(ctx context.Context) ([]domain.Project, error)
}
