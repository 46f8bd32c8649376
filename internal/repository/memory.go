package repository

import (
	"context"
	"sync"

	"github.com/storefront-api/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryProductRepository implements ProductRepository with in-memory storage.
// Used by tests; identifiers are ObjectIDs so handler-level id validation
// behaves the same as against the real store.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]models.Product
}

// NewInMemoryProductRepository creates an empty in-memory product repository
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[primitive.ObjectID]models.Product),
	}
}

// List returns products matching the optional category filter
func (r *InMemoryProductRepository) List(ctx context.Context, category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		if category != "" && product.Category != category {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// GetByID returns a product by its identifier
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Count returns the number of stored products
func (r *InMemoryProductRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.products)), nil
}

// InsertMany stores the given products, assigning identifiers where absent
func (r *InMemoryProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, product := range products {
		if product.ID.IsZero() {
			product.ID = primitive.NewObjectID()
		}
		r.products[product.ID] = product
	}
	return nil
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage
type InMemoryOrderRepository struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[primitive.ObjectID]models.Order),
	}
}

// Create stores the order and returns a generated identifier
func (r *InMemoryOrderRepository) Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	stored := *order
	stored.ID = id
	r.orders[id] = stored
	return id, nil
}

// Get returns a stored order, for test assertions
func (r *InMemoryOrderRepository) Get(id primitive.ObjectID) (models.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	return order, ok
}
