package service

import (
	"context"
	"log"
	"time"

	"github.com/devfolio/portfolio-backend/internal/comments/domain"
)

const defaultListLimit = 100

// CommentService orchestrates comment persistence and the
// notification side effect.
type CommentService struct {
	repo      domain.CommentRepository
	publisher domain.Publisher
}

func NewCommentService(repo domain.CommentRepository, publisher domain.Publisher) *CommentService {
	return &CommentService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateComment stores a new comment for the caller and then fans out
// a notification. The publish runs only after a successful insert and
// is at most once: a publish failure is logged, the stored comment is
// returned regardless.
func (s *CommentService) CreateComment(ctx context.Context, input domain.CommentCreate, authorID, authorName string) (domain.Comment, error) {
	comment := domain.Comment{
		AuthorID:   authorID,
		AuthorName: authorName,
		Message:    input.Message,
		IsPublic:   input.IsPublic,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, comment)
	if err != nil {
		return domain.Comment{}, err
	}

	if err := s.publisher.PublishComment(domain.CommentNotification{
		AuthorName: authorName,
		Message:    input.Message,
		IsPublic:   input.IsPublic,
	}); err != nil {
		log.Printf("[comments] notification publish failed: %v", err)
	}

	return created, nil
}

// GetAllPublicComments returns public comments, newest first.
func (s *CommentService) GetAllPublicComments(ctx context.Context) ([]domain.Comment, error) {
	return s.repo.ListPublic(ctx, defaultListLimit, 0)
}

// GetCommentsByUser returns the author's own comments, newest first.
func (s *CommentService) GetCommentsByUser(ctx context.Context, authorID string) ([]domain.Comment, error) {
	return s.repo.ListByUser(ctx, authorID, defaultListLimit, 0)
}

// GetCommentByID returns the comment or nil when absent.
func (s *CommentService) GetCommentByID(ctx context.Context, id string) (*domain.Comment, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteComment removes the comment, reporting whether one existed.
func (s *CommentService) DeleteComment(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
