package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/taskvault/taskboard/internal/core/domain"
	"github.com/taskvault/taskboard/internal/core/ports"
)

// ProjectService implements project creation and listing.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

// Create persists a new project. Only ADMIN may create one; the name must be
// non-blank after trimming. Name uniqueness is not enforced.
func (s *ProjectService) Create(ctx context.Context, caller domain.Caller, name string) (*domain.Project, error) {
	if !caller.Role.CanCreateProject() {
		return nil, fmt.Errorf("%w: only ADMIN can create projects", domain.ErrForbidden)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrValidation)
	}

	project := &domain.Project{
		ID:   domain.NewID(),
		Name: name,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", project.ID).Str("name", project.Name).Msg("project created")
	return project, nil
}

// List returns all projects ordered by name. Every authenticated role sees
// the full list.
func (s *ProjectService) List(ctx context.Context, caller domain.Caller) ([]domain.Project, error) {
	return s.repo.List(ctx)
}
