package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

func TestMalformedIDs(t *testing.T) {
	repo := NewMongoProjectRepository(nil)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "not-a-valid-id")
	require.NoError(t, err)
	assert.Nil(t, got)

	updated, err := repo.Update(ctx, "not-a-valid-id", domain.Project{Name: "x"})
	require.NoError(t, err)
	assert.Nil(t, updated)

	ok, err := repo.Delete(ctx, "not-a-valid-id")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetFieldsCoversEverythingButID(t *testing.T) {
	p := domain.Project{
		ID:          "68b1c2d3e4f5a6b7c8d9e0f1",
		Name:        "portfolio site",
		Description: "personal portfolio frontend",
		Stack:       []string{"Go", "Vue"},
		RepoURL:     "https://github.com/devfolio/site",
		Tags:        []string{"web"},
		Visible:     true,
	}

	fields := setFields(p)

	assert.Equal(t, bson.M{
		"name":        "portfolio site",
		"description": "personal portfolio frontend",
		"stack":       []string{"Go", "Vue"},
		"repo_url":    "https://github.com/devfolio/site",
		"tags":        []string{"web"},
		"visible":     true,
	}, fields)
	assert.NotContains(t, fields, "_id")
}

func TestFromDoc(t *testing.T) {
	oid := primitive.NewObjectID()

	p := fromDoc(projectDoc{
		ID:          oid,
		Name:        "portfolio site",
		Description: "personal portfolio frontend",
		Stack:       []string{"Go"},
		RepoURL:     "https://github.com/devfolio/site",
		Tags:        []string{"web"},
		Visible:     true,
	})

	assert.Equal(t, oid.Hex(), p.ID)
	assert.Equal(t, "portfolio site", p.Name)
	assert.Equal(t, []string{"Go"}, p.Stack)
	assert.True(t, p.Visible)
}
