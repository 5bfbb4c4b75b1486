package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phillip/youth-portal/database"
	"github.com/phillip/youth-portal/models"
)

// MongoUserRepository is a MongoDB implementation of UserRepository
type MongoUserRepository struct {
	store  *database.Store
	users  *mongo.Collection
	events *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store *database.Store) UserRepository {
	return &MongoUserRepository{
		store:  store,
		users:  store.Collection(database.UsersCollection),
		events: store.Collection(database.EventsCollection),
	}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := r.users.InsertOne(ctx, user)
	return mapErr(err)
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.users.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) List(ctx context.Context, filter UserFilter) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.users.Find(ctx, userQuery(filter), opts)
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) Update(ctx context.Context, user *models.User) error {
	set := bson.M{
		"username":     user.Username,
		"email":        user.Email,
		"password":     user.PasswordHash,
		"name":         user.Name,
		"age":          user.Age,
		"birthday":     user.Birthday,
		"phone":        user.Phone,
		"address":      user.Address,
		"organization": user.Organization,
		"committee":    user.Committee,
		"role":         user.Role,
		"isApproved":   user.IsApproved,
		"updatedAt":    user.UpdatedAt,
	}

	res, err := r.users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": set})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user and their references from events in a single transaction.
func (r *MongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	session, err := r.store.Client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.users.DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}

		_, err = r.events.UpdateMany(sc,
			bson.M{"$or": bson.A{
				bson.M{"registeredUsers": id},
				bson.M{"interestedUsers": id},
			}},
			bson.M{
				"$pull": bson.M{"registeredUsers": id, "interestedUsers": id},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		return nil, err
	})
	return err
}

func (r *MongoUserRepository) Count(ctx context.Context, filter UserFilter) (int64, error) {
	return r.users.CountDocuments(ctx, userQuery(filter))
}

func userQuery(filter UserFilter) bson.M {
	q := bson.M{}
	if filter.IDs != nil {
		q["_id"] = bson.M{"$in": filter.IDs}
	}
	if filter.Role != nil {
		q["role"] = *filter.Role
	}
	if filter.IsApproved != nil {
		q["isApproved"] = *filter.IsApproved
	}
	if filter.Committee != "" {
		q["committee"] = filter.Committee
	}
	if filter.Query != "" {
		q["$or"] = bson.A{
			bson.M{"name": containsFold(filter.Query)},
			bson.M{"username": containsFold(filter.Query)},
			bson.M{"email": containsFold(filter.Query)},
		}
	}
	return q
}
