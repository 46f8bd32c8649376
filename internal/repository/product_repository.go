package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront-api/server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names in the document store.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrStoreUnavailable = errors.New("database not configured")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// List returns products, optionally filtered by exact category match.
	// An empty category means no filter.
	List(ctx context.Context, category string) ([]models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []models.Product) error
}

// MongoProductRepository implements ProductRepository against the "product"
// collection. It is a thin pass-through: equality-filter finds and inserts,
// no transactions or indexing strategy.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a product repository on the given database
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		coll: db.Collection(ProductCollection),
	}
}

// List returns products matching the optional category filter
func (r *MongoProductRepository) List(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	// Always a non-nil slice so an empty result serializes as [], not null
	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

// GetByID returns a product by its store-assigned identifier
func (r *MongoProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", id.Hex(), err)
	}

	return &product, nil
}

// Count returns the number of documents in the product collection
func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// InsertMany stores the given products, letting the store assign identifiers
func (r *MongoProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}
