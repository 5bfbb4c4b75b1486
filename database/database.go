package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/phillip/youth-portal/config"
)

const (
	UsersCollection         = "users"
	EventsCollection        = "events"
	AnnouncementsCollection = "announcements"
	DonationsCollection     = "donations"
)

// Store is the process-wide database handle, created once in main and injected
// into every repository.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established")
	return NewStore(client, cfg.DBName), nil
}

// NewStore wraps an existing client; tests pass the mock client from mtest.
func NewStore(client *mongo.Client, dbName string) *Store {
	return &Store{
		Client: client,
		DB:     client.Database(dbName),
	}
}

func (s *Store) Collection(name string) *mongo.Collection {
	return s.DB.Collection(name)
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
