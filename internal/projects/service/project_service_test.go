package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

// fakeProjectRepo is an in-memory stand-in for the Mongo adapter,
// honoring the same absence-vs-error contract.
type fakeProjectRepo struct {
	store map[string]domain.Project
	seq   int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{store: make(map[string]domain.Project)}
}

func (f *fakeProjectRepo) ListAll(ctx context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(f.store))
	for _, p := range f.store {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	p, ok := f.store[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProjectRepo) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	f.seq++
	project.ID = fmt.Sprintf("%024x", f.seq)
	f.store[project.ID] = project
	return project, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, id string, project domain.Project) (*domain.Project, error) {
	if _, ok := f.store[id]; !ok {
		return nil, nil
	}
	project.ID = id
	f.store[id] = project
	return &project, nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.store[id]; !ok {
		return false, nil
	}
	delete(f.store, id)
	return true, nil
}

func sampleProject() domain.Project {
	return domain.Project{
		Name:        "portfolio site",
		Description: "personal portfolio frontend",
		Stack:       []string{"Go", "Vue"},
		RepoURL:     "https://github.com/devfolio/site",
		Tags:        []string{"web"},
		Visible:     true,
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newFakeProjectRepo())

	created, err := svc.CreateProject(ctx, sampleProject())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := svc.GetProject(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	// identical field for field; only the id moved from empty to assigned
	assert.Equal(t, created, *fetched)
	want := sampleProject()
	want.ID = created.ID
	assert.Equal(t, want, *fetched)
}

func TestGetProjectAbsent(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newFakeProjectRepo())

	got, err := svc.GetProject(ctx, "68b1c2d3e4f5a6b7c8d9e0f1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateProject(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	t.Run("replaces every field of an existing project", func(t *testing.T) {
		created, err := svc.CreateProject(ctx, sampleProject())
		require.NoError(t, err)

		replacement := domain.Project{
			Name:        "portfolio api",
			Description: "backend rewrite",
			Stack:       []string{"Go"},
			RepoURL:     "https://github.com/devfolio/api",
			Tags:        []string{"backend", "api"},
			Visible:     false,
		}

		updated, err := svc.UpdateProject(ctx, created.ID, replacement)
		require.NoError(t, err)
		require.NotNil(t, updated)

		replacement.ID = created.ID
		assert.Equal(t, replacement, *updated)
	})

	t.Run("absent id updates nothing and creates nothing", func(t *testing.T) {
		before := len(repo.store)

		updated, err := svc.UpdateProject(ctx, "68b1c2d3e4f5a6b7c8d9e0ff", sampleProject())
		require.NoError(t, err)
		assert.Nil(t, updated)
		assert.Len(t, repo.store, before)
	})
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newFakeProjectRepo())

	created, err := svc.CreateProject(ctx, sampleProject())
	require.NoError(t, err)

	ok, err := svc.DeleteProject(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.DeleteProject(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListProjects(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newFakeProjectRepo())

	_, err := svc.CreateProject(ctx, sampleProject())
	require.NoError(t, err)
	_, err = svc.CreateProject(ctx, sampleProject())
	require.NoError(t, err)

	items, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
