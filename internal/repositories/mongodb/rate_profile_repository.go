package mongodb

import (
	"context"
	"time"

	"github.com/huaydee/lotto-admin-backend/internal/models"
	"github.com/huaydee/lotto-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RateProfileRepository implements the repositories.RateProfileRepository interface
type RateProfileRepository struct {
	collection *mongo.Collection
}

// NewRateProfileRepository creates a new RateProfileRepository
func NewRateProfileRepository(db *mongo.Database) repositories.RateProfileRepository {
	return &RateProfileRepository{
		collection: db.Collection("rate_profiles"),
	}
}

// Create creates a new rate profile
func (r *RateProfileRepository) Create(ctx context.Context, profile *models.RateProfile) error {
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		return err
	}
	profile.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a rate profile by ID
func (r *RateProfileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.RateProfile, error) {
	var profile models.RateProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindAll finds all rate profiles
func (r *RateProfileRepository) FindAll(ctx context.Context) ([]*models.RateProfile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*models.RateProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Update updates a rate profile
func (r *RateProfileRepository) Update(ctx context.Context, profile *models.RateProfile) error {
	profile.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile)
	return err
}

// Delete deletes a rate profile
func (r *RateProfileRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
