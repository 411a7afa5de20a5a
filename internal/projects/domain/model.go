package domain

import "context"

// Project is a portfolio entry. It is storage-agnostic and used
// across repository and HTTP layers; ID is empty until persisted.
type Project struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Stack       []string `json:"stack"`
	RepoURL     string   `json:"repo_url"`
	Tags        []string `json:"tags"`
	Visible     bool     `json:"visible"`
}

// ProjectRepository is the persistence contract for projects.
//
// A nil project (or false) with a nil error means no record matched,
// including malformed identifiers; a non-nil error always means the
// store itself failed. Update replaces every field except the id.
type ProjectRepository interface {
	ListAll(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, project Project) (Project, error)
	Update(ctx context.Context, id string, project Project) (*Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}
