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

// ResultRepository implements the repositories.ResultRepository interface
type ResultRepository struct {
	collection *mongo.Collection
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *mongo.Database) repositories.ResultRepository {
	return &ResultRepository{
		collection: db.Collection("round_results"),
	}
}

// Upsert stores a round result, replacing any previous result for the same
// product+date. Re-posting is how an operator corrects a result.
func (r *ResultRepository) Upsert(ctx context.Context, result *models.RoundResult) error {
	result.UpdatedAt = time.Now()
	filter := bson.M{"lotteryProductId": result.LotteryProductID, "roundDate": result.RoundDate}
	update := bson.M{
		"$set": bson.M{
			"top3":      result.Top3,
			"bottom2":   result.Bottom2,
			"updatedAt": result.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindByRound finds the result for one product and round date
func (r *ResultRepository) FindByRound(ctx context.Context, productID primitive.ObjectID, roundDate string) (*models.RoundResult, error) {
	var result models.RoundResult
	err := r.collection.FindOne(ctx, bson.M{"lotteryProductId": productID, "roundDate": roundDate}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
