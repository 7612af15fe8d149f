package ports

import (
	"context"

	"github.com/taskvault/taskboard/internal/core/domain"
)

// UserRepository defines the read-only persistence interface for users.
type UserRepository interface {
	// FindByEmail resolves a user by exact, case-sensitive email match.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns all users ordered by role, then name (lexicographic).
	List(ctx context.Context) ([]domain.User, error)
}
