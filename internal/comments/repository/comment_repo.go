package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/portfolio-backend/internal/comments/domain"
)

// MongoCommentRepository implements domain.CommentRepository over a
// Mongo collection. External ids are the hex form of the document key.
type MongoCommentRepository struct {
	collection *mongo.Collection
}

func NewMongoCommentRepository(collection *mongo.Collection) *MongoCommentRepository {
	return &MongoCommentRepository{collection: collection}
}

type commentDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID   string             `bson:"author_id"`
	AuthorName string             `bson:"author_name"`
	Message    string             `bson:"message"`
	IsPublic   bool               `bson:"is_public"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func toDoc(c domain.Comment) commentDoc {
	return commentDoc{
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Message:    c.Message,
		IsPublic:   c.IsPublic,
		CreatedAt:  c.CreatedAt,
	}
}

func fromDoc(d commentDoc) domain.Comment {
	return domain.Comment{
		ID:         d.ID.Hex(),
		AuthorID:   d.AuthorID,
		AuthorName: d.AuthorName,
		Message:    d.Message,
		IsPublic:   d.IsPublic,
		CreatedAt:  d.CreatedAt,
	}
}

// EnsureIndexes creates the indexes the list queries rely on.
func (r *MongoCommentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_public", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create comment indexes: %w", err)
	}
	return nil
}

// Insert persists the comment and returns it with the assigned id.
func (r *MongoCommentRepository) Insert(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	res, err := r.collection.InsertOne(ctx, toDoc(comment))
	if err != nil {
		return domain.Comment{}, fmt.Errorf("insert comment: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Comment{}, fmt.Errorf("insert comment: unexpected inserted id type %T", res.InsertedID)
	}

	comment.ID = oid.Hex()
	return comment, nil
}

// ListPublic returns public comments, newest first.
func (r *MongoCommentRepository) ListPublic(ctx context.Context, limit, offset int64) ([]domain.Comment, error) {
	return r.list(ctx, bson.M{"is_public": true}, limit, offset)
}

// ListByUser returns the author's comments, public and private,
// newest first.
func (r *MongoCommentRepository) ListByUser(ctx context.Context, authorID string, limit, offset int64) ([]domain.Comment, error) {
	return r.list(ctx, bson.M{"author_id": authorID}, limit, offset)
}

func (r *MongoCommentRepository) list(ctx context.Context, filter bson.M, limit, offset int64) ([]domain.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []commentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	out := make([]domain.Comment, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromDoc(d))
	}
	return out, nil
}

// GetByID returns the comment, or nil when the id is malformed or
// matches nothing.
func (r *MongoCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Printf("[comments] invalid comment id %q: %v", id, err)
		return nil, nil
	}

	var doc commentDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comment %s: %w", id, err)
	}

	c := fromDoc(doc)
	return &c, nil
}

// Delete removes the comment, reporting whether a record matched.
// A malformed id deletes nothing and is not an error.
func (r *MongoCommentRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Printf("[comments] invalid comment id %q: %v", id, err)
		return false, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete comment %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
