package http

import (
	"context"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

// ProjectService is what the handlers need from the application layer.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, id string, project domain.Project) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	service          ProjectService
	authorizedUserID string
}

func New(service ProjectService, authorizedUserID string) *Handler {
	return &Handler{service: service, authorizedUserID: authorizedUserID}
}
