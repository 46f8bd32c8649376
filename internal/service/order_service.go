package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront-api/server/internal/models"
	"github.com/storefront-api/server/internal/pricing"
	"github.com/storefront-api/server/internal/repository"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrMissingShipping = errors.New("shipping information is incomplete")
	ErrInvalidEmail    = errors.New("invalid email address")
)

// OrderService handles order business logic
type OrderService struct {
	orders repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{
		orders: orders,
	}
}

// CreateOrder validates the request, computes totals server-side and persists
// the order. Client-supplied totals or status never reach this point; the
// request type carries only items and shipping.
//
// An empty item list is accepted and yields all-zero totals.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.OrderConfirmation, error) {
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if item.Price < 0 {
			return nil, ErrInvalidPrice
		}
	}

	if err := validateShipping(req.Shipping); err != nil {
		return nil, err
	}

	totals := pricing.Calculate(req.Items)

	items := req.Items
	if items == nil {
		// never store a null items array
		items = []models.OrderItem{}
	}

	order := &models.Order{
		Reference: uuid.New().String(),
		Items:     items,
		Shipping:  req.Shipping,
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	return &models.OrderConfirmation{
		ID:        id.Hex(),
		Reference: order.Reference,
		Subtotal:  order.Subtotal,
		Tax:       order.Tax,
		Total:     order.Total,
		Status:    order.Status,
	}, nil
}

// validateShipping checks that every shipping field is present and the email
// is syntactically valid
func validateShipping(info models.ShippingInfo) error {
	fields := []string{
		info.Name,
		info.Email,
		info.Address,
		info.City,
		info.Country,
		info.PostalCode,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return ErrMissingShipping
		}
	}

	if _, err := mail.ParseAddress(info.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
