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

// MongoDonationRepository is a MongoDB implementation of DonationRepository
type MongoDonationRepository struct {
	col *mongo.Collection
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(store *database.Store) DonationRepository {
	return &MongoDonationRepository{col: store.Collection(database.DonationsCollection)}
}

func (r *MongoDonationRepository) Create(ctx context.Context, d *models.Donation) error {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, d)
	return mapErr(err)
}

func (r *MongoDonationRepository) InsertMany(ctx context.Context, donations []models.Donation) error {
	if len(donations) == 0 {
		return nil
	}

	docs := make([]interface{}, len(donations))
	for i := range donations {
		if donations[i].ID.IsZero() {
			donations[i].ID = primitive.NewObjectID()
		}
		docs[i] = donations[i]
	}

	_, err := r.col.InsertMany(ctx, docs)
	return mapErr(err)
}

func (r *MongoDonationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error) {
	var d models.Donation
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, mapErr(err)
	}
	return &d, nil
}

func (r *MongoDonationRepository) List(ctx context.Context, filter DonationFilter, page, limit int) ([]models.Donation, int64, error) {
	q := donationQuery(filter)

	total, err := r.col.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	donations, err := r.find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	return donations, total, nil
}

func (r *MongoDonationRepository) ListAll(ctx context.Context, filter DonationFilter) ([]models.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.find(ctx, donationQuery(filter), opts)
}

func (r *MongoDonationRepository) find(ctx context.Context, q bson.M, opts *options.FindOptions) ([]models.Donation, error) {
	cursor, err := r.col.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}

	donations := []models.Donation{}
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *MongoDonationRepository) Update(ctx context.Context, d *models.Donation) error {
	set := bson.M{
		"donorName":       d.DonorName,
		"amount":          d.Amount,
		"method":          d.Method,
		"status":          d.Status,
		"date":            d.Date,
		"referenceNumber": d.ReferenceNumber,
		"notes":           d.Notes,
		"updatedAt":       d.UpdatedAt,
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": d.ID}, bson.M{"$set": set})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoDonationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoDonationRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *MongoDonationRepository) StatsByMethod(ctx context.Context) ([]models.DonationMethodStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.DonationCompleted}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$method",
			"total":   bson.M{"$sum": "$amount"},
			"average": bson.M{"$avg": "$amount"},
			"min":     bson.M{"$min": "$amount"},
			"max":     bson.M{"$max": "$amount"},
			"count":   bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	stats := []models.DonationMethodStats{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func donationQuery(filter DonationFilter) bson.M {
	q := bson.M{}
	if filter.Method != nil {
		q["method"] = *filter.Method
	}
	if filter.Status != nil {
		q["status"] = *filter.Status
	}
	if filter.Donor != "" {
		q["donorName"] = containsFold(filter.Donor)
	}
	if filter.From != nil || filter.To != nil {
		q["date"] = dateRange(filter.From, filter.To)
	}
	return q
}
