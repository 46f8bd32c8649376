package repository

import (
	"context"

	"github.com/storefront-api/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnavailableProductRepository stands in when no database connection could be
// established at startup. Every call fails with ErrStoreUnavailable, which
// handlers surface as a 500, while the process keeps serving the endpoints
// that do not need the store.
type UnavailableProductRepository struct{}

func (UnavailableProductRepository) List(ctx context.Context, category string) ([]models.Product, error) {
	return nil, ErrStoreUnavailable
}

func (UnavailableProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return nil, ErrStoreUnavailable
}

func (UnavailableProductRepository) Count(ctx context.Context) (int64, error) {
	return 0, ErrStoreUnavailable
}

func (UnavailableProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	return ErrStoreUnavailable
}

// UnavailableOrderRepository is the order-side counterpart.
type UnavailableOrderRepository struct{}

func (UnavailableOrderRepository) Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	return primitive.NilObjectID, ErrStoreUnavailable
}
