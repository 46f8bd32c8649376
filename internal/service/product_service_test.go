package service

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront-api/server/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductService_SeedProducts(t *testing.T) {
	repo := repository.NewInMemoryProductRepository()
	svc := NewProductService(repo)
	ctx := context.Background()

	// First seed populates the catalog
	res, err := svc.SeedProducts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Seeded {
		t.Error("expected first seed to insert products")
	}
	if res.Count != 4 {
		t.Errorf("expected 4 products seeded, got %d", res.Count)
	}

	// Second seed is a no-op reporting the existing count
	res, err = svc.SeedProducts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Seeded {
		t.Error("expected second seed to be a no-op")
	}
	if res.Count != 4 {
		t.Errorf("expected existing count 4, got %d", res.Count)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 products in store after double seed, got %d", count)
	}
}

func TestProductService_ListProducts_CategoryFilter(t *testing.T) {
	repo := repository.NewInMemoryProductRepository()
	svc := NewProductService(repo)
	ctx := context.Background()

	if _, err := svc.SeedProducts(ctx); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	tests := []struct {
		name     string
		category string
		want     int
	}{
		{"no filter returns everything", "", 4},
		{"home category", "Home", 2},
		{"apparel category", "Apparel", 1},
		{"unknown category returns empty", "Electronics", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			products, err := svc.ListProducts(ctx, tc.category)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if products == nil {
				t.Fatal("expected a non-nil slice")
			}
			if len(products) != tc.want {
				t.Errorf("expected %d products, got %d", tc.want, len(products))
			}
		})
	}
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	repo := repository.NewInMemoryProductRepository()
	svc := NewProductService(repo)

	_, err := svc.GetProduct(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, repository.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
