package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one purchased line within an order
type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"product_id"`
	Title     string             `json:"title" bson:"title"`
	Qty       int                `json:"qty" bson:"qty"`
	Price     float64            `json:"price" bson:"price"`
}

// Order is a farmer purchase from a single supplier. Orders are
// written by the checkout flow and read here only by the analytics
// and reporting aggregations.
type Order struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FarmerID   primitive.ObjectID `json:"farmerId" bson:"farmer_id"`
	SupplierID primitive.ObjectID `json:"supplierId" bson:"supplier_id"`
	Items      []OrderItem        `json:"items" bson:"items"`
	Total      float64            `json:"total" bson:"total"`
	Status     string             `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
}
