package database

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexSpec struct {
	collection string
	name       string
	keys       bson.D
	unique     bool
}

var indexes = []indexSpec{
	// uniqueness constraints
	{UsersCollection, "uniq_users_email", bson.D{{Key: "email", Value: 1}}, true},
	{UsersCollection, "uniq_users_username", bson.D{{Key: "username", Value: 1}}, true},

	// filtering and sorting
	{UsersCollection, "idx_users_approval", bson.D{{Key: "isApproved", Value: 1}, {Key: "role", Value: 1}}, false},
	{EventsCollection, "idx_events_date", bson.D{{Key: "date", Value: 1}}, false},
	{EventsCollection, "idx_events_status", bson.D{{Key: "status", Value: 1}}, false},
	{AnnouncementsCollection, "idx_announcements_created_at", bson.D{{Key: "createdAt", Value: -1}}, false},
	{DonationsCollection, "idx_donations_date", bson.D{{Key: "date", Value: -1}}, false},
	{DonationsCollection, "idx_donations_status_method", bson.D{{Key: "status", Value: 1}, {Key: "method", Value: 1}}, false},
}

// EnsureIndexes creates the indexes backing uniqueness and list queries.
// CreateOne is a no-op for an index that already exists with the same spec.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	log.Println("Ensuring database indexes...")
	for _, idx := range indexes {
		model := mongo.IndexModel{
			Keys:    idx.keys,
			Options: options.Index().SetName(idx.name).SetUnique(idx.unique),
		}
		if _, err := s.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}
	log.Println("Database indexes ready")
	return nil
}
