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

// LotteryRepository implements the repositories.LotteryRepository interface
type LotteryRepository struct {
	collection *mongo.Collection
}

// NewLotteryRepository creates a new LotteryRepository
func NewLotteryRepository(db *mongo.Database) repositories.LotteryRepository {
	return &LotteryRepository{
		collection: db.Collection("lotteries"),
	}
}

// Create creates a new lottery product
func (r *LotteryRepository) Create(ctx context.Context, product *models.LotteryProduct) error {
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a lottery product by ID
func (r *LotteryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.LotteryProduct, error) {
	var product models.LotteryProduct
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByCode finds a lottery product by its short code
func (r *LotteryRepository) FindByCode(ctx context.Context, code string) (*models.LotteryProduct, error) {
	var product models.LotteryProduct
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAll finds all lottery products
func (r *LotteryRepository) FindAll(ctx context.Context) ([]*models.LotteryProduct, error) {
	return r.find(ctx, bson.M{})
}

// FindActive finds all active lottery products
func (r *LotteryRepository) FindActive(ctx context.Context) ([]*models.LotteryProduct, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *LotteryRepository) find(ctx context.Context, filter bson.M) ([]*models.LotteryProduct, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*models.LotteryProduct
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Update updates a lottery product
func (r *LotteryRepository) Update(ctx context.Context, product *models.LotteryProduct) error {
	product.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	return err
}

// Delete deletes a lottery product
func (r *LotteryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
