package service

import (
	"context"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo domain.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo domain.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// ListProjects returns all projects
func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListAll(ctx)
}

// GetProject returns the project or nil when absent
func (s *ProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProject persists a new project
func (s *ProjectService) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	return s.repo.Create(ctx, project)
}

// UpdateProject replaces all fields of an existing project
func (s *ProjectService) UpdateProject(ctx context.Context, id string, project domain.Project) (*domain.Project, error) {
	return s.repo.Update(ctx, id, project)
}

// DeleteProject removes a project
func (s *ProjectService) DeleteProject(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
