package service

import (
	"context"

	"github.com/taskvault/taskboard/internal/core/domain"
	"github.com/taskvault/taskboard/internal/core/ports"
)

// DirectoryService lists the known users for assignment lookups.
type DirectoryService struct {
	repo ports.UserRepository
}

func NewDirectoryService(repo ports.UserRepository) *DirectoryService {
	return &DirectoryService{repo: repo}
}

// ListUsers returns every user ordered by role then name. All authenticated
// roles may call it; password hashes never leave the repository type's
// serialized form.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}
