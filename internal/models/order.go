package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusPending is the only status this system assigns; there are no
// lifecycle transitions (cancel/fulfill/ship) implemented.
const OrderStatusPending = "pending"

// OrderItem is a line item captured at order-creation time.
// Title and price are snapshots, decoupled from live product state.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Title     string  `json:"title" bson:"title"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// ShippingInfo is the delivery address attached to an order.
type ShippingInfo struct {
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	Address    string `json:"address" bson:"address"`
	City       string `json:"city" bson:"city"`
	Country    string `json:"country" bson:"country"`
	PostalCode string `json:"postal_code" bson:"postal_code"`
}

// OrderRequest is an incoming order submission. Any client-supplied totals
// or status are ignored; the server recomputes them.
type OrderRequest struct {
	Items    []OrderItem  `json:"items"`
	Shipping ShippingInfo `json:"shipping"`
}

// Order is the persisted order document.
type Order struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Reference string             `json:"reference" bson:"reference"`
	Items     []OrderItem        `json:"items" bson:"items"`
	Shipping  ShippingInfo       `json:"shipping" bson:"shipping"`
	Subtotal  float64            `json:"subtotal" bson:"subtotal"`
	Tax       float64            `json:"tax" bson:"tax"`
	Total     float64            `json:"total" bson:"total"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// OrderConfirmation is the response body for a created order.
type OrderConfirmation struct {
	ID        string  `json:"id"`
	Reference string  `json:"reference"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
}
