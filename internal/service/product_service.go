package service

import (
	"context"

	"github.com/storefront-api/server/internal/models"
	"github.com/storefront-api/server/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns products, optionally filtered by exact category match
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.repo.List(ctx, category)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// SeedResult reports the outcome of a seeding attempt.
type SeedResult struct {
	Seeded bool
	Count  int64
}

// SeedProducts inserts the sample catalog if the product collection is empty.
// Re-seeding is a no-op that reports the existing count, so calling it twice
// never duplicates products.
func (s *ProductService) SeedProducts(ctx context.Context) (SeedResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	if count > 0 {
		return SeedResult{Count: count}, nil
	}

	samples := sampleProducts()
	if err := s.repo.InsertMany(ctx, samples); err != nil {
		return SeedResult{}, err
	}
	return SeedResult{Seeded: true, Count: int64(len(samples))}, nil
}

// sampleProducts is the fixed starter catalog.
func sampleProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Classic Tee",
			Description: "Soft cotton tee",
			Price:       19.99,
			Category:    "Apparel",
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab",
			InStock:     true,
		},
		{
			Title:       "Ceramic Mug",
			Description: "Matte finish, 350ml",
			Price:       12.5,
			Category:    "Home",
			Image:       "https://images.unsplash.com/photo-1503602642458-232111445657",
			InStock:     true,
		},
		{
			Title:       "Leather Journal",
			Description: "A5 dotted pages",
			Price:       24.0,
			Category:    "Stationery",
			Image:       "https://images.unsplash.com/photo-1519682337058-a94d519337bc",
			InStock:     true,
		},
		{
			Title:       "Desk Lamp",
			Description: "Warm LED with dimmer",
			Price:       39.0,
			Category:    "Home",
			Image:       "https://images.unsplash.com/photo-1509228627152-72ae9ae6848d",
			InStock:     true,
		},
	}
}
