package ports

import (
	"context"

	"github.com/taskvault/taskboard/internal/core/domain"
)

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	// Create persists a new project. Only ADMIN callers may create; the name
	// must be non-blank after trimming. Duplicate names are permitted.
	Create(ctx context.Context, caller domain.Caller, name string) (*domain.Project, error)
	// List returns all projects; every authenticated role sees all of them.
	List(ctx context.Context, caller domain.Caller) ([]domain.Project, error)
}
