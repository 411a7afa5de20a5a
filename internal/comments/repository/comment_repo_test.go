package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devfolio/portfolio-backend/internal/comments/domain"
)

// Malformed ids must short-circuit before any collection access, so a
// repository without a collection is enough to exercise them.

func TestGetByIDMalformedID(t *testing.T) {
	repo := NewMongoCommentRepository(nil)

	got, err := repo.GetByID(context.Background(), "not-a-valid-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteMalformedID(t *testing.T) {
	repo := NewMongoCommentRepository(nil)

	ok, err := repo.Delete(context.Background(), "not-a-valid-id")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDocMapping(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run("to document drops the external id", func(t *testing.T) {
		doc := toDoc(domain.Comment{
			ID:         "68b1c2d3e4f5a6b7c8d9e0f1",
			AuthorID:   "u1",
			AuthorName: "Alice",
			Message:    "hello",
			IsPublic:   true,
			CreatedAt:  created,
		})

		assert.True(t, doc.ID.IsZero())
		assert.Equal(t, "u1", doc.AuthorID)
		assert.Equal(t, "Alice", doc.AuthorName)
		assert.Equal(t, "hello", doc.Message)
		assert.True(t, doc.IsPublic)
		assert.Equal(t, created, doc.CreatedAt)
	})

	t.Run("from document exposes the hex id", func(t *testing.T) {
		oid := primitive.NewObjectID()
		c := fromDoc(commentDoc{
			ID:         oid,
			AuthorID:   "u1",
			AuthorName: "Alice",
			Message:    "hello",
			IsPublic:   false,
			CreatedAt:  created,
		})

		assert.Equal(t, oid.Hex(), c.ID)
		assert.Equal(t, "u1", c.AuthorID)
		assert.Equal(t, "Alice", c.AuthorName)
		assert.Equal(t, "hello", c.Message)
		assert.False(t, c.IsPublic)
		assert.Equal(t, created, c.CreatedAt)
	})
}
