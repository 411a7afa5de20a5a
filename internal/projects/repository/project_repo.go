package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

// MongoProjectRepository implements domain.ProjectRepository over a
// Mongo collection. External ids are the hex form of the document key.
type MongoProjectRepository struct {
	collection *mongo.Collection
}

func NewMongoProjectRepository(collection *mongo.Collection) *MongoProjectRepository {
	return &MongoProjectRepository{collection: collection}
}

type projectDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Stack       []string           `bson:"stack"`
	RepoURL     string             `bson:"repo_url"`
	Tags        []string           `bson:"tags"`
	Visible     bool               `bson:"visible"`
}

// setFields is the full non-identifier field set, used for wholesale
// replacement on update.
func setFields(p domain.Project) bson.M {
	return bson.M{
		"name":        p.Name,
		"description": p.Description,
		"stack":       p.Stack,
		"repo_url":    p.RepoURL,
		"tags":        p.Tags,
		"visible":     p.Visible,
	}
}

func fromDoc(d projectDoc) domain.Project {
	return domain.Project{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Stack:       d.Stack,
		RepoURL:     d.RepoURL,
		Tags:        d.Tags,
		Visible:     d.Visible,
	}
}

// ListAll returns every project in storage order.
func (r *MongoProjectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []projectDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	out := make([]domain.Project, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromDoc(d))
	}
	return out, nil
}

// GetByID returns the project, or nil when the id is malformed or
// matches nothing.
func (r *MongoProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Printf("[projects] invalid project id %q: %v", id, err)
		return nil, nil
	}

	var doc projectDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}

	p := fromDoc(doc)
	return &p, nil
}

// Create persists the project and returns it with the assigned id.
func (r *MongoProjectRepository) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	doc := projectDoc{
		Name:        project.Name,
		Description: project.Description,
		Stack:       project.Stack,
		RepoURL:     project.RepoURL,
		Tags:        project.Tags,
		Visible:     project.Visible,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.Project{}, fmt.Errorf("insert project: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Project{}, fmt.Errorf("insert project: unexpected inserted id type %T", res.InsertedID)
	}

	project.ID = oid.Hex()
	return project, nil
}

// Update replaces all fields of the matched project. Zero matched
// records means no match; the record is never created.
func (r *MongoProjectRepository) Update(ctx context.Context, id string, project domain.Project) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Printf("[projects] invalid project id %q: %v", id, err)
		return nil, nil
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": setFields(project)})
	if err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}

	project.ID = id
	return &project, nil
}

// Delete removes the project, reporting whether a record matched.
func (r *MongoProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Printf("[projects] invalid project id %q: %v", id, err)
		return false, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete project %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
