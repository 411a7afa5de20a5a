package domain

import (
	"context"
	"time"
)

// CommentCreate is the caller-supplied part of a new comment.
// The message may be empty; visibility defaults to public at the
// HTTP binding.
type CommentCreate struct {
	Message  string `json:"message"`
	IsPublic bool   `json:"is_public"`
}

// Comment is a persisted visitor comment. ID is empty until the
// repository assigns one; CreatedAt is stamped once at creation and
// never mutated.
type Comment struct {
	ID         string    `json:"id,omitempty"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Message    string    `json:"message"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommentRepository is the persistence contract for comments.
//
// Absence and failure are distinct: a nil comment (or false) with a
// nil error means no record matched, including malformed identifiers;
// a non-nil error always means the store itself failed.
type CommentRepository interface {
	Insert(ctx context.Context, comment Comment) (Comment, error)
	ListPublic(ctx context.Context, limit, offset int64) ([]Comment, error)
	ListByUser(ctx context.Context, authorID string, limit, offset int64) ([]Comment, error)
	GetByID(ctx context.Context, id string) (*Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CommentNotification is the payload fanned out to subscribers when a
// comment is created.
type CommentNotification struct {
	AuthorName string `json:"author_name"`
	Message    string `json:"message"`
	IsPublic   bool   `json:"is_public"`
}

// Publisher emits comment notifications. Delivery is at most once:
// the comment is already stored when publish runs, and a publish
// failure is not compensated.
type Publisher interface {
	PublishComment(notification CommentNotification) error
	Close() error
}
