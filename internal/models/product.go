package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents an item available in the catalog.
// Products are immutable once seeded; there are no update or delete endpoints.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
}
