package ports

import (
	"context"

	"github.com/taskvault/taskboard/internal/core/domain"
)

// DirectoryService exposes the user directory used for assignment lookups.
// Any authenticated role may read it; there are no write operations.
type DirectoryService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}
