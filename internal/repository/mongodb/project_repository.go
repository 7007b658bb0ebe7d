package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

const CollectionProjects = "projects"

type ProjectRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// compile-time check: *ProjectRepository must satisfy port.ProjectRepository
var _ port.ProjectRepository = (*ProjectRepository)(nil)
var _ port.Pinger = (*ProjectRepository)(nil)

// Connect opens a client for uri and verifies it can reach the primary.
func Connect(ctx context.Context, uri, database string) (*ProjectRepository, error) {
	log.Println("initialising mongodb project store...")

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return NewProjectRepository(client, database), nil
}

func NewProjectRepository(client *mongo.Client, database string) *ProjectRepository {
	return &ProjectRepository{
		client: client,
		coll:   client.Database(database).Collection(CollectionProjects),
	}
}

// EnsureIndexes creates the indexes used by List.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	return err
}

func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	log.Printf("creating document for project #%s...", p.ID)
	_, err := r.coll.InsertOne(ctx, toDocument(p))
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	log.Printf("fetching project #%s from mongodb...", id)

	var doc projectDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

func (r *ProjectRepository) List(ctx context.Context, category model.Category) ([]*model.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, categoryFilter(category), opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(context.WithoutCancel(ctx)) }()

	var docs []projectDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*model.Project, 0, len(docs))
	for _, d := range docs {
		p, err := d.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *model.Project) error {
	log.Printf("updating document for project #%s...", p.ID)

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": p.ID.String()}, updateDocument(p))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("deleting project #%s from mongodb...", id)

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

func (r *ProjectRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
