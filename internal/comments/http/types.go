package http

import (
	"context"

	"github.com/devfolio/portfolio-backend/internal/comments/domain"
)

// CommentService is what the handlers need from the application layer.
type CommentService interface {
	CreateComment(ctx context.Context, input domain.CommentCreate, authorID, authorName string) (domain.Comment, error)
	GetAllPublicComments(ctx context.Context) ([]domain.Comment, error)
	GetCommentsByUser(ctx context.Context, authorID string) ([]domain.Comment, error)
	GetCommentByID(ctx context.Context, id string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id string) (bool, error)
}

// Handler bundles the dependencies for comment HTTP endpoints.
type Handler struct {
	service CommentService
}

func New(service CommentService) *Handler {
	return &Handler{service: service}
}
