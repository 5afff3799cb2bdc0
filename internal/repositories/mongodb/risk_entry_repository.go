package mongodb

import (
	"context"
	"time"

	"github.com/huaydee/lotto-admin-backend/internal/models"
	"github.com/huaydee/lotto-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RiskEntryRepository implements the repositories.RiskEntryRepository interface.
// Uniqueness on (lotteryProductId, roundDate, betType, number) is enforced by
// upserting on that tuple, so a later write supersedes the earlier one.
type RiskEntryRepository struct {
	collection *mongo.Collection
}

// NewRiskEntryRepository creates a new RiskEntryRepository
func NewRiskEntryRepository(db *mongo.Database) repositories.RiskEntryRepository {
	return &RiskEntryRepository{
		collection: db.Collection("risk_entries"),
	}
}

// FindByRound finds every committed entry for one product and round date
func (r *RiskEntryRepository) FindByRound(ctx context.Context, productID primitive.ObjectID, roundDate string) ([]*models.RiskEntry, error) {
	filter := bson.M{"lotteryProductId": productID, "roundDate": roundDate}
	opts := options.Find().SetSort(bson.D{{Key: "betType", Value: 1}, {Key: "number", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.RiskEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertMany writes a batch of entries in a single bulk operation
func (r *RiskEntryRepository) UpsertMany(ctx context.Context, entries []*models.RiskEntry) error {
	if len(entries) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(entries))
	for _, entry := range entries {
		entry.CreatedAt = time.Now()
		filter := bson.M{
			"lotteryProductId": entry.LotteryProductID,
			"roundDate":        entry.RoundDate,
			"betType":          entry.BetType,
			"number":           entry.Number,
		}
		update := bson.M{"$set": bson.M{
			"riskType":  entry.RiskType,
			"createdAt": entry.CreatedAt,
		}}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(update).
			SetUpsert(true))
	}

	_, err := r.collection.BulkWrite(ctx, writes)
	return err
}

// DeleteByID deletes a single committed entry
func (r *RiskEntryRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteByRound deletes every committed entry for one product and round date
func (r *RiskEntryRepository) DeleteByRound(ctx context.Context, productID primitive.ObjectID, roundDate string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"lotteryProductId": productID, "roundDate": roundDate})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
