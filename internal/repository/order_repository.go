package repository

import (
	"context"
	"fmt"

	"github.com/storefront-api/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// Create inserts the order and returns its store-generated identifier.
	Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
}

// MongoOrderRepository implements OrderRepository against the "order" collection
type MongoOrderRepository struct {
	coll *mongo.Collection
}

// NewMongoOrderRepository creates an order repository on the given database
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		coll: db.Collection(OrderCollection),
	}
}

// Create inserts the order document and returns the generated identifier
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert order: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}
