package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store owns the process-wide MongoDB connection. The driver's client is
// safe for concurrent use, so a single Store is shared by all handlers.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, name string) (*Store, error) {
	if uri == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if name == "" {
		return nil, errors.New("DATABASE_NAME is not set")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(name),
	}, nil
}

func (s *Store) Name() string {
	return s.db.Name()
}

// CreateDocument inserts a single record and returns its store-generated
// identifier as hex text.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
