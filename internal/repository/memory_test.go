package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront-api/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInMemoryProductRepository(t *testing.T) {
	repo := NewInMemoryProductRepository()
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty repository, got %d products", count)
	}

	products := []models.Product{
		{Title: "Classic Tee", Price: 19.99, Category: "Apparel", InStock: true},
		{Title: "Ceramic Mug", Price: 12.5, Category: "Home", InStock: true},
	}
	if err := repo.InsertMany(ctx, products); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	count, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 products, got %d", count)
	}

	// Identifiers were assigned on insert
	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, p := range all {
		if p.ID.IsZero() {
			t.Errorf("expected product %q to have an id", p.Title)
		}
	}

	// Exact-match category filter
	home, err := repo.List(ctx, "Home")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(home) != 1 || home[0].Title != "Ceramic Mug" {
		t.Errorf("expected only the mug in Home, got %+v", home)
	}

	// GetByID roundtrip
	got, err := repo.GetByID(ctx, home[0].ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "Ceramic Mug" {
		t.Errorf("expected Ceramic Mug, got %q", got.Title)
	}

	// Absent identifier
	if _, err := repo.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestInMemoryOrderRepository(t *testing.T) {
	repo := NewInMemoryOrderRepository()

	order := &models.Order{
		Reference: "ref-1",
		Items:     []models.OrderItem{{ProductID: "p1", Title: "Classic Tee", Price: 19.99, Quantity: 1}},
		Status:    models.OrderStatusPending,
	}

	id, err := repo.Create(context.Background(), order)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id.IsZero() {
		t.Fatal("expected a generated id")
	}

	stored, ok := repo.Get(id)
	if !ok {
		t.Fatal("expected order to be stored")
	}
	if stored.Reference != "ref-1" {
		t.Errorf("expected reference ref-1, got %q", stored.Reference)
	}
	if len(stored.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(stored.Items))
	}
}
