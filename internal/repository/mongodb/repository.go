// Package mongodb loads the scheme catalog from MongoDB. It is a
// startup-time source only: the catalog is read once and the connection is
// closed; nothing mutates schemes at runtime.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agron-app/agron/internal/catalog"
	"github.com/agron-app/agron/internal/domain/models"
)

const (
	schemesCollection   = "schemes"
	deadlinesCollection = "deadlines"
)

// Repository reads catalog content from MongoDB.
type Repository struct {
	client *mongo.Client
	dbName string
}

// NewRepository connects and pings the configured MongoDB deployment.
func NewRepository(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{client: client, dbName: dbName}, nil
}

// schemeDoc carries the explicit ordering field that fixes presentation
// order, since Mongo find order is otherwise unspecified.
type schemeDoc struct {
	models.Scheme `bson:",inline"`
	Order         int `bson:"order"`
}

type deadlineDoc struct {
	models.SchemeDeadline `bson:",inline"`
	Order                 int `bson:"order"`
}

// LoadCatalog reads schemes and deadlines sorted by their order field.
func (r *Repository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	byOrder := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cur, err := r.client.Database(r.dbName).Collection(schemesCollection).Find(ctx, bson.D{}, byOrder)
	if err != nil {
		return nil, fmt.Errorf("find schemes: %w", err)
	}
	var schemeDocs []schemeDoc
	if err := cur.All(ctx, &schemeDocs); err != nil {
		return nil, fmt.Errorf("decode schemes: %w", err)
	}

	cur, err = r.client.Database(r.dbName).Collection(deadlinesCollection).Find(ctx, bson.D{}, byOrder)
	if err != nil {
		return nil, fmt.Errorf("find deadlines: %w", err)
	}
	var deadlineDocs []deadlineDoc
	if err := cur.All(ctx, &deadlineDocs); err != nil {
		return nil, fmt.Errorf("decode deadlines: %w", err)
	}

	cat := &catalog.Catalog{
		Schemes:   make([]models.Scheme, 0, len(schemeDocs)),
		Deadlines: make([]models.SchemeDeadline, 0, len(deadlineDocs)),
	}
	for _, doc := range schemeDocs {
		cat.Schemes = append(cat.Schemes, doc.Scheme)
	}
	for _, doc := range deadlineDocs {
		cat.Deadlines = append(cat.Deadlines, doc.SchemeDeadline)
	}

	if len(cat.Schemes) == 0 {
		return nil, fmt.Errorf("schemes collection is empty")
	}

	return cat, nil
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
