package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phillip/youth-portal/database"
	"github.com/phillip/youth-portal/models"
)

// MongoEventRepository is a MongoDB implementation of EventRepository
type MongoEventRepository struct {
	store  *database.Store
	events *mongo.Collection
	users  *mongo.Collection
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(store *database.Store) EventRepository {
	return &MongoEventRepository{
		store:  store,
		events: store.Collection(database.EventsCollection),
		users:  store.Collection(database.UsersCollection),
	}
}

func (r *MongoEventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	_, err := r.events.InsertOne(ctx, event)
	return mapErr(err)
}

func (r *MongoEventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	if err := r.events.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		return nil, mapErr(err)
	}
	return &event, nil
}

func (r *MongoEventRepository) List(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	q := bson.M{}
	if filter.Status != nil {
		q["status"] = *filter.Status
	}
	if filter.From != nil || filter.To != nil {
		q["date"] = dateRange(filter.From, filter.To)
	}
	if filter.Query != "" {
		q["$or"] = bson.A{
			bson.M{"title": containsFold(filter.Query)},
			bson.M{"location": containsFold(filter.Query)},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.events.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *MongoEventRepository) Update(ctx context.Context, event *models.Event) error {
	set := bson.M{
		"title":       event.Title,
		"description": event.Description,
		"date":        event.Date,
		"location":    event.Location,
		"capacity":    event.Capacity,
		"image":       event.Image,
		"status":      event.Status,
		"updatedAt":   event.UpdatedAt,
	}

	res, err := r.events.UpdateOne(ctx, bson.M{"_id": event.ID}, bson.M{"$set": set})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoEventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	session, err := r.store.Client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.events.DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}
		_, err = r.users.UpdateMany(sc,
			bson.M{"registeredEvents": id},
			bson.M{
				"$pull": bson.M{"registeredEvents": id},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		return nil, err
	})
	return err
}

func (r *MongoEventRepository) Count(ctx context.Context) (int64, error) {
	return r.events.CountDocuments(ctx, bson.M{})
}

// seatAvailable matches events with no capacity limit or with a free seat.
var seatAvailable = bson.M{"$or": bson.A{
	bson.M{"$lte": bson.A{"$capacity", 0}},
	bson.M{"$lt": bson.A{
		bson.M{"$size": bson.M{"$ifNull": bson.A{"$registeredUsers", bson.A{}}}},
		"$capacity",
	}},
}}

func (r *MongoEventRepository) Register(ctx context.Context, eventID, userID primitive.ObjectID) error {
	return r.inTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := r.events.UpdateOne(sc,
			bson.M{
				"_id":             eventID,
				"registeredUsers": bson.M{"$ne": userID},
				"$expr":           seatAvailable,
			},
			bson.M{
				"$addToSet": bson.M{"registeredUsers": userID},
				"$set":      bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrRegistrationRejected
		}

		res, err = r.users.UpdateOne(sc,
			bson.M{"_id": userID},
			bson.M{
				"$addToSet": bson.M{"registeredEvents": eventID},
				"$set":      bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *MongoEventRepository) Unregister(ctx context.Context, eventID, userID primitive.ObjectID) error {
	return r.inTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := r.events.UpdateOne(sc,
			bson.M{"_id": eventID, "registeredUsers": userID},
			bson.M{
				"$pull": bson.M{"registeredUsers": userID},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotRegistered
		}

		_, err = r.users.UpdateOne(sc,
			bson.M{"_id": userID},
			bson.M{
				"$pull": bson.M{"registeredEvents": eventID},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		return err
	})
}

func (r *MongoEventRepository) AddInterest(ctx context.Context, eventID, userID primitive.ObjectID) error {
	return r.updateInterest(ctx, eventID, "$addToSet", userID)
}

func (r *MongoEventRepository) RemoveInterest(ctx context.Context, eventID, userID primitive.ObjectID) error {
	return r.updateInterest(ctx, eventID, "$pull", userID)
}

// updateInterest applies op to the interest set and bumps updatedAt.
func (r *MongoEventRepository) updateInterest(ctx context.Context, eventID primitive.ObjectID, op string, userID primitive.ObjectID) error {
	update := bson.M{
		op:     bson.M{"interestedUsers": userID},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := r.events.UpdateOne(ctx, bson.M{"_id": eventID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoEventRepository) inTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := r.store.Client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
