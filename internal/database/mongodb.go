package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// Store owns the handles to the five logical record sets used by the
// repositories. One Store per process; the underlying client pool is safe for
// concurrent use by all request handlers.
type Store struct {
	Client      *mongo.Client
	Articles    *mongo.Collection
	Comments    *mongo.Collection
	Ratings     *mongo.Collection
	Users       *mongo.Collection
	Collections *mongo.Collection
}

// NewStore wires the named collections of the given database.
func NewStore(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		Client:      client,
		Articles:    db.Collection("articles"),
		Comments:    db.Collection("comments"),
		Ratings:     db.Collection("ratings"),
		Users:       db.Collection("users"),
		Collections: db.Collection("collections"),
	}
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
