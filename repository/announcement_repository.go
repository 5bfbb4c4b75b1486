package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phillip/youth-portal/database"
	"github.com/phillip/youth-portal/models"
)

// MongoAnnouncementRepository is a MongoDB implementation of AnnouncementRepository
type MongoAnnouncementRepository struct {
	col *mongo.Collection
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(store *database.Store) AnnouncementRepository {
	return &MongoAnnouncementRepository{col: store.Collection(database.AnnouncementsCollection)}
}

func (r *MongoAnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, a)
	return mapErr(err)
}

func (r *MongoAnnouncementRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	var a models.Announcement
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *MongoAnnouncementRepository) List(ctx context.Context, filter AnnouncementFilter) ([]models.Announcement, error) {
	q := bson.M{}
	if filter.Priority != nil {
		q["priority"] = *filter.Priority
	}
	if filter.ActiveAt != nil {
		q["$or"] = bson.A{
			bson.M{"expiresAt": bson.M{"$exists": false}},
			bson.M{"expiresAt": nil},
			bson.M{"expiresAt": bson.M{"$gt": *filter.ActiveAt}},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}

	announcements := []models.Announcement{}
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *MongoAnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	set := bson.M{
		"title":     a.Title,
		"content":   a.Content,
		"image":     a.Image,
		"priority":  a.Priority,
		"expiresAt": a.ExpiresAt,
		"updatedAt": a.UpdatedAt,
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": a.ID}, bson.M{"$set": set})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoAnnouncementRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoAnnouncementRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
